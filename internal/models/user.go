package models

import "time"

// User represents a registered account. The active session lives directly on
// the row: a bearer token authorizes only while it equals ActiveToken, and
// every login overwrites it, so the newest login always wins.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:64;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CompanyName  string `gorm:"size:128"`
	Industry     string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ActiveToken   string     `gorm:"size:512"` // empty = logged out
	TokenIssuedAt *time.Time
}
