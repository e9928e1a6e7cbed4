package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skillforge-dev/skillforge/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSessionRepository(t *testing.T) SessionRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.InterviewSession{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewSessionRepository(db)
}

func createTestSession(t *testing.T, repo SessionRepository, userID uint) *model.InterviewSession {
	t.Helper()

	session := &model.InterviewSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		Transcript: []model.TranscriptEntry{},
		Scores:     []model.ScoreEntry{},
		Status:     model.SessionStatusActive,
		StartTime:  time.Now(),
	}
	if err := repo.Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := newTestSessionRepository(t)
	created := createTestSession(t, repo, 1)

	loaded, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if loaded.UserID != 1 || loaded.Status != model.SessionStatusActive {
		t.Fatalf("unexpected session: %+v", loaded)
	}

	if _, err := repo.FindByID("missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSaveWithVersionPersistsTranscript(t *testing.T) {
	repo := newTestSessionRepository(t)
	created := createTestSession(t, repo, 1)

	session, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	session.Transcript = append(session.Transcript, model.TranscriptEntry{
		Sender:    model.SenderAI,
		Message:   "Tell me about yourself",
		Timestamp: time.Now(),
	})
	session.Scores = append(session.Scores, model.ScoreEntry{Question: "q", Answer: "a", Score: 80})
	session.AverageScore = 80

	if err := repo.SaveWithVersion(session); err != nil {
		t.Fatalf("SaveWithVersion returned error: %v", err)
	}

	reloaded, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if len(reloaded.Transcript) != 1 || len(reloaded.Scores) != 1 {
		t.Fatalf("expected persisted transcript and scores, got %+v", reloaded)
	}
	if reloaded.AverageScore != 80 {
		t.Fatalf("expected average 80, got %d", reloaded.AverageScore)
	}
	if reloaded.Version != created.Version+1 {
		t.Fatalf("expected version bump to %d, got %d", created.Version+1, reloaded.Version)
	}
}

func TestSaveWithVersionDetectsConcurrentWrite(t *testing.T) {
	repo := newTestSessionRepository(t)
	created := createTestSession(t, repo, 1)

	first, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	second, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	first.AverageScore = 70
	if err := repo.SaveWithVersion(first); err != nil {
		t.Fatalf("first save returned error: %v", err)
	}

	second.AverageScore = 90
	staleVersion := second.Version
	if err := repo.SaveWithVersion(second); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if second.Version != staleVersion {
		t.Fatalf("expected version restored to %d after conflict, got %d", staleVersion, second.Version)
	}

	// The losing write must not have clobbered the winner.
	reloaded, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if reloaded.AverageScore != 70 {
		t.Fatalf("expected winning average 70, got %d", reloaded.AverageScore)
	}
}

func TestFindAllByUserOrdersNewestFirst(t *testing.T) {
	repo := newTestSessionRepository(t)

	older := &model.InterviewSession{ID: uuid.NewString(), UserID: 1, Status: model.SessionStatusActive, StartTime: time.Now().Add(-time.Hour)}
	newer := &model.InterviewSession{ID: uuid.NewString(), UserID: 1, Status: model.SessionStatusActive, StartTime: time.Now()}
	other := &model.InterviewSession{ID: uuid.NewString(), UserID: 2, Status: model.SessionStatusActive, StartTime: time.Now()}
	for _, s := range []*model.InterviewSession{older, newer, other} {
		if err := repo.Create(s); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}
	}

	sessions, err := repo.FindAllByUser(1)
	if err != nil {
		t.Fatalf("FindAllByUser returned error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions for user 1, got %d", len(sessions))
	}
	if sessions[0].ID != newer.ID || sessions[1].ID != older.ID {
		t.Fatal("expected sessions ordered newest first")
	}
}
