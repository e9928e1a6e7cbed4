package model

import (
	"time"

	"gorm.io/gorm"
)

// Project is a portfolio entry owned by exactly one user.
type Project struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Technologies []string       `gorm:"serializer:json" json:"technologies"`
	ImageURL     *string        `json:"image_url,omitempty"`
	ProjectURL   *string        `json:"project_url,omitempty"`
	GithubURL    *string        `json:"github_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
