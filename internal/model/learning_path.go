package model

import (
	"time"

	"gorm.io/gorm"
)

// Resource difficulty and type enums are free-form strings validated at the
// DTO layer: type in {video, article, course, book}, difficulty in
// {beginner, intermediate, advanced}.
type Resource struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

// LearningPath maps one skill to curated resources and follow-up skills.
type LearningPath struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Skill         string         `gorm:"not null;uniqueIndex" json:"skill"`
	Description   string         `json:"description,omitempty"`
	Resources     []Resource     `gorm:"serializer:json" json:"resources"`
	RelatedSkills []string       `gorm:"serializer:json" json:"related_skills"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
