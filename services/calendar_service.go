package services

import (
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
)

type CalendarEventInput struct {
	PetID       uint   `json:"pet" binding:"required"`
	EventType   string `json:"event_type" binding:"required"`
	EventTitle  string `json:"event_title" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	StartTime   string `json:"start_time"`                    // HH:MM, optional
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type CalendarEventPatch struct {
	EventType   *string `json:"event_type"`
	EventTitle  *string `json:"event_title"`
	StartDate   *string `json:"start_date"`
	StartTime   *string `json:"start_time"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func parseEventDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, validationErr("start_date", "must be a YYYY-MM-DD date")
	}
	return date, nil
}

func parseEventTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return validationErr("start_time", "must be an HH:MM time")
	}
	return nil
}

// ListEvents returns the caller's events for one month (current month when
// year/month are zero), optionally narrowed to a single pet.
func ListEvents(userID uint, year, month int, petID uint) ([]models.CalendarEvent, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	q := config.DB.
		Joins("JOIN pets ON pets.id = calendar_events.pet_id").
		Where("pets.user_id = ?", userID).
		Where("calendar_events.start_date >= ? AND calendar_events.start_date < ?", monthStart, monthEnd)
	if petID != 0 {
		q = q.Where("calendar_events.pet_id = ?", petID)
	}

	var events []models.CalendarEvent
	err := q.Order("calendar_events.start_date, calendar_events.start_time").Find(&events).Error
	return events, err
}

// GetEvent resolves ownership through the pet; foreign and missing events
// look the same.
func GetEvent(userID, eventID uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := config.DB.
		Joins("JOIN pets ON pets.id = calendar_events.pet_id").
		Where("calendar_events.id = ? AND pets.user_id = ?", eventID, userID).
		First(&event).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &event, nil
}

func CreateEvent(userID uint, input CalendarEventInput) (*models.CalendarEvent, error) {
	// The owning pet comes from the token-scoped lookup, never from a
	// client-supplied user id.
	if _, err := GetPet(userID, input.PetID); err != nil {
		return nil, err
	}
	if !models.ValidEventType(input.EventType) {
		return nil, validationErr("event_type", "unknown event type")
	}
	startDate, err := parseEventDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	if err := parseEventTime(input.StartTime); err != nil {
		return nil, err
	}

	event := models.CalendarEvent{
		PetID:       input.PetID,
		EventType:   input.EventType,
		EventTitle:  input.EventTitle,
		StartDate:   startDate,
		StartTime:   input.StartTime,
		Description: input.Description,
		Completed:   input.Completed,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func UpdateEvent(userID, eventID uint, input CalendarEventInput) (*models.CalendarEvent, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	// A full update may also move the event to another of the caller's pets.
	if _, err := GetPet(userID, input.PetID); err != nil {
		return nil, err
	}
	if !models.ValidEventType(input.EventType) {
		return nil, validationErr("event_type", "unknown event type")
	}
	startDate, err := parseEventDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	if err := parseEventTime(input.StartTime); err != nil {
		return nil, err
	}

	event.PetID = input.PetID
	event.EventType = input.EventType
	event.EventTitle = input.EventTitle
	event.StartDate = startDate
	event.StartTime = input.StartTime
	event.Description = input.Description
	event.Completed = input.Completed

	if err := config.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func PatchEvent(userID, eventID uint, patch CalendarEventPatch) (*models.CalendarEvent, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	if patch.EventType != nil {
		if !models.ValidEventType(*patch.EventType) {
			return nil, validationErr("event_type", "unknown event type")
		}
		event.EventType = *patch.EventType
	}
	if patch.StartDate != nil {
		startDate, err := parseEventDate(*patch.StartDate)
		if err != nil {
			return nil, err
		}
		event.StartDate = startDate
	}
	if patch.StartTime != nil {
		if err := parseEventTime(*patch.StartTime); err != nil {
			return nil, err
		}
		event.StartTime = *patch.StartTime
	}
	if patch.EventTitle != nil {
		event.EventTitle = *patch.EventTitle
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Completed != nil {
		event.Completed = *patch.Completed
	}

	if err := config.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func DeleteEvent(userID, eventID uint) error {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return err
	}
	return config.DB.Delete(event).Error
}
