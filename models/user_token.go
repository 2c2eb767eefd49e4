package models

import "time"

// UserToken is an opaque bearer credential. A user may hold any number of
// live tokens; nothing ever revokes them on login or logout.
type UserToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Token     string    `gorm:"size:255;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (UserToken) TableName() string { return "user_tokens" }
