package models

import "time"

type JournalEntry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"<-:create"`
	UpdatedAt time.Time

	PetID       uint   `gorm:"index;not null"`
	EntryType   string `gorm:"not null"`
	EntryTitle  string `gorm:"not null"`
	Description string
}
