package models

import "time"

// Event and journal entry kinds share one vocabulary.
const (
	EventCheckup     = "CHECKUP"
	EventVaccination = "VACCINATION"
	EventFleaControl = "FLEA_CONTROL"
	EventGrooming    = "GROOMING"
	EventBath        = "BATH"
	EventTraining    = "TRAINING"
	EventOther       = "OTHER"
)

type CalendarEvent struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PetID       uint   `gorm:"index;not null"`
	EventType   string `gorm:"not null"`
	EventTitle  string `gorm:"not null"`
	StartDate   time.Time
	StartTime   string // "HH:MM", empty for all-day events
	Description string
	Completed   bool
}

func ValidEventType(t string) bool {
	switch t {
	case EventCheckup, EventVaccination, EventFleaControl,
		EventGrooming, EventBath, EventTraining, EventOther:
		return true
	}
	return false
}
