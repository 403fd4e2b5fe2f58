package entity

import (
	"time"
)

// SessionValue is one key of one visitor session.
type SessionValue struct {
	SessionID string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text"`
	ExpiresAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
