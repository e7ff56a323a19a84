package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string `gorm:"not null"`
	PhotoURL string
}
