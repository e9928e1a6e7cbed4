package service

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestProfileService(t *testing.T) (ProfileService, repository.UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	userRepo := repository.NewUserRepository(db)
	return NewProfileService(userRepo), userRepo
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	if _, err := svc.GetProfile(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfileNormalizesSkills(t *testing.T) {
	svc, userRepo := newTestProfileService(t)
	user := createTestUser(t, userRepo, nil)

	updated, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Headline:  "Backend Engineer",
		Skills:    []string{" Go ", "", "React", "  "},
		Socials:   map[string]string{"github": "https://github.com/janedoe"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Profile.Skills, []string{"Go", "React"}) {
		t.Fatalf("expected trimmed skills, got %v", updated.Profile.Skills)
	}

	// Round trip through the repository.
	fetched, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if fetched.Profile.FirstName != "Jane" || fetched.Profile.Headline != "Backend Engineer" {
		t.Fatalf("unexpected persisted profile: %+v", fetched.Profile)
	}
	if fetched.Profile.Socials["github"] != "https://github.com/janedoe" {
		t.Fatalf("unexpected socials: %v", fetched.Profile.Socials)
	}
}
