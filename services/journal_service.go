package services

import (
	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
)

type JournalEntryInput struct {
	PetID       uint   `json:"pet" binding:"required"`
	EntryType   string `json:"entry_type" binding:"required"`
	EntryTitle  string `json:"entry_title" binding:"required"`
	Description string `json:"description"`
}

type JournalEntryPatch struct {
	EntryType   *string `json:"entry_type"`
	EntryTitle  *string `json:"entry_title"`
	Description *string `json:"description"`
}

func ListEntries(userID uint, petID uint) ([]models.JournalEntry, error) {
	q := config.DB.
		Joins("JOIN pets ON pets.id = journal_entries.pet_id").
		Where("pets.user_id = ?", userID)
	if petID != 0 {
		q = q.Where("journal_entries.pet_id = ?", petID)
	}

	var entries []models.JournalEntry
	err := q.Order("journal_entries.created_at desc").Find(&entries).Error
	return entries, err
}

func GetEntry(userID, entryID uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := config.DB.
		Joins("JOIN pets ON pets.id = journal_entries.pet_id").
		Where("journal_entries.id = ? AND pets.user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func CreateEntry(userID uint, input JournalEntryInput) (*models.JournalEntry, error) {
	if _, err := GetPet(userID, input.PetID); err != nil {
		return nil, err
	}
	if !models.ValidEventType(input.EntryType) {
		return nil, validationErr("entry_type", "unknown entry type")
	}

	entry := models.JournalEntry{
		PetID:       input.PetID,
		EntryType:   input.EntryType,
		EntryTitle:  input.EntryTitle,
		Description: input.Description,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces everything except the immutable CreatedAt. A full
// update may also move the entry to another of the caller's pets.
func UpdateEntry(userID, entryID uint, input JournalEntryInput) (*models.JournalEntry, error) {
	entry, err := GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if _, err := GetPet(userID, input.PetID); err != nil {
		return nil, err
	}
	if !models.ValidEventType(input.EntryType) {
		return nil, validationErr("entry_type", "unknown entry type")
	}

	entry.PetID = input.PetID
	entry.EntryType = input.EntryType
	entry.EntryTitle = input.EntryTitle
	entry.Description = input.Description

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func PatchEntry(userID, entryID uint, patch JournalEntryPatch) (*models.JournalEntry, error) {
	entry, err := GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if patch.EntryType != nil {
		if !models.ValidEventType(*patch.EntryType) {
			return nil, validationErr("entry_type", "unknown entry type")
		}
		entry.EntryType = *patch.EntryType
	}
	if patch.EntryTitle != nil {
		entry.EntryTitle = *patch.EntryTitle
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteEntry(userID, entryID uint) error {
	entry, err := GetEntry(userID, entryID)
	if err != nil {
		return err
	}
	return config.DB.Delete(entry).Error
}
