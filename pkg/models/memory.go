package models

import "time"

// CustomerMemory is the long-term summary kept per customer phone.
// Upsert-only, last writer wins: each save fully replaces the previous
// summary and recomputes the expiry.
type CustomerMemory struct {
	BaseModel
	CustomerPhone string    `gorm:"size:50;not null;uniqueIndex" json:"customer_phone" validate:"required"`
	Summary       string    `gorm:"type:text;not null" json:"summary"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
}

// Session is a conversation session owned by the agent runtime. This core
// never reads IsBlocked; it only flips it when the assistant hands a
// conversation off to a human.
type Session struct {
	BaseModel
	CustomerPhone string     `gorm:"size:50;index" json:"customer_phone"`
	IsBlocked     bool       `gorm:"default:false" json:"is_blocked"`
	ExpiresAt     *time.Time `json:"expires_at"`
}
