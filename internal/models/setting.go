package models

import "time"

// Setting is an arbitrary key/value pair scoped to a user. Writes upsert on
// (user_id, key).
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_settings_user_key;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Key       string    `gorm:"uniqueIndex:idx_settings_user_key;not null" json:"key" example:"preferred_model"`
	Value     string    `json:"value" example:"gpt-4o-mini"`
	UpdatedAt time.Time `json:"updated_at"`
}
