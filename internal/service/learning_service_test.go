package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestLearningService(t *testing.T) (LearningService, repository.UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.LearningPath{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	pathRepo := repository.NewLearningPathRepository(db)
	userRepo := repository.NewUserRepository(db)
	svc := NewLearningService(pathRepo, userRepo)
	if err := svc.Seed(); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	return svc, userRepo
}

func createTestUser(t *testing.T, userRepo repository.UserRepository, skills []string) *model.User {
	t.Helper()

	user := &model.User{
		Email:    fmt.Sprintf("%s@example.com", t.Name()),
		Password: "hash",
		Profile:  model.Profile{Skills: skills},
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestGetRecommendationsMatchesSkills(t *testing.T) {
	svc, userRepo := newTestLearningService(t)
	user := createTestUser(t, userRepo, []string{"react", "Docker"})

	recs, err := svc.GetRecommendations(user.ID)
	if err != nil {
		t.Fatalf("GetRecommendations returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.Reason != "Because you know React" {
		t.Fatalf("unexpected reason %q", rec.Reason)
	}
	if len(rec.Resources) == 0 {
		t.Fatal("expected curated resources")
	}
	for _, step := range rec.NextSteps {
		if step == "Docker" {
			t.Fatal("next steps must not include skills the user already has")
		}
	}
	if len(rec.NextSteps) == 0 {
		t.Fatal("expected next steps beyond the user's skills")
	}
}

func TestGetRecommendationsDefaultsWhenNoMatch(t *testing.T) {
	svc, userRepo := newTestLearningService(t)
	user := createTestUser(t, userRepo, []string{"COBOL"})

	recs, err := svc.GetRecommendations(user.ID)
	if err != nil {
		t.Fatalf("GetRecommendations returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected the default recommendation, got %d", len(recs))
	}
	if recs[0].Reason != "Recommended for Full Stack Developers" {
		t.Fatalf("unexpected default reason %q", recs[0].Reason)
	}
	if len(recs[0].Resources) == 0 {
		t.Fatal("expected default resources")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, userRepo := newTestLearningService(t)

	// Seeding again must upsert, not duplicate.
	if err := svc.Seed(); err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}

	user := createTestUser(t, userRepo, []string{"Go"})
	recs, err := svc.GetRecommendations(user.ID)
	if err != nil {
		t.Fatalf("GetRecommendations returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation after reseed, got %d", len(recs))
	}
}
