package models

import "time"

// RevokedToken is the refresh-token denylist. A refresh token whose JTI
// appears here can no longer mint access tokens; rows are purgeable once
// ExpiresAt passes because the token would be rejected on expiry anyway.
type RevokedToken struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	JTI       string `gorm:"uniqueIndex;not null"`
	UserID    uint   `gorm:"index"`
	ExpiresAt time.Time
}
