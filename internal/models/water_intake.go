package models

import "time"

// WaterIntake is one signed hydration delta in milliliters. The table is an
// append-only ledger: removing water inserts a negative-amount row, existing
// rows are never mutated. The daily total is the sum of all deltas for a date
// and may go negative; no floor is applied by the store.
type WaterIntake struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID     uint      `gorm:"index;not null" json:"user_id" example:"1"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	Amount     int       `json:"amount" example:"250"`
	LoggedDate string    `gorm:"index;not null" json:"logged_date" example:"2025-01-15"`
	CreatedAt  time.Time `json:"created_at"`
}
