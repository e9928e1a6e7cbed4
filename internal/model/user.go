package model

import (
	"time"

	"gorm.io/gorm"
)

// Profile is embedded career data editable by the user.
type Profile struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Headline  string            `json:"headline"`
	Bio       string            `json:"bio"`
	Skills    []string          `json:"skills"`
	Socials   map[string]string `json:"socials"`
}

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `gorm:"not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"` // bcrypt hash
	Profile   Profile        `gorm:"serializer:json" json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
