package model

import (
	"time"

	"gorm.io/gorm"
)

// Session status values. A session starts active and moves to completed
// exactly once; there is no way back.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// Transcript senders.
const (
	SenderAI     = "ai"
	SenderUser   = "user"
	SenderSystem = "system"
)

// TranscriptEntry is one chat turn inside an interview session.
type TranscriptEntry struct {
	Sender    string    `json:"sender"` // "ai", "user" or "system"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ScoreEntry records the evaluation of a single answered question.
type ScoreEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"` // 0-100
	Feedback string `json:"feedback"`
}

// InterviewSession is one end-to-end mock-interview attempt. Transcript and
// Scores are append-only; AverageScore is recomputed on every appended score.
// Version backs the optimistic-concurrency check in the session repository.
type InterviewSession struct {
	ID             string            `gorm:"primarykey;type:varchar(36)" json:"id"`
	UserID         uint              `gorm:"not null;index" json:"user_id"`
	ResumeText     string            `gorm:"type:text" json:"resume_text"`
	JobDescription string            `gorm:"type:text" json:"job_description"`
	Transcript     []TranscriptEntry `gorm:"serializer:json" json:"transcript"`
	Scores         []ScoreEntry      `gorm:"serializer:json" json:"scores"`
	AverageScore   int               `gorm:"default:0" json:"average_score"`
	Status         string            `gorm:"not null;default:active" json:"status"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        *time.Time        `json:"end_time,omitempty"`
	Version        int               `gorm:"not null;default:0" json:"-"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}
