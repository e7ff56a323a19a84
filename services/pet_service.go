package services

import (
	"fmt"
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"gorm.io/gorm"
)

var minBirthday = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)

type PetInput struct {
	PetName  string `json:"pet_name" binding:"required"`
	Breed    string `json:"breed"`
	Sex      string `json:"sex"`
	Birthday string `json:"birthday" binding:"required"` // YYYY-MM-DD
	Photo    string `json:"photo"`
}

type PetPatch struct {
	PetName  *string `json:"pet_name"`
	Breed    *string `json:"breed"`
	Sex      *string `json:"sex"`
	Birthday *string `json:"birthday"`
	Photo    *string `json:"photo"`
}

func parseBirthday(s string) (time.Time, error) {
	birthday, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, validationErr("birthday", "must be a YYYY-MM-DD date")
	}
	if birthday.After(time.Now()) {
		return time.Time{}, validationErr("birthday", "must not be in the future")
	}
	if birthday.Before(minBirthday) {
		return time.Time{}, validationErr("birthday", "must not be before 1950-01-01")
	}
	return birthday, nil
}

func ListPets(userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	err := config.DB.Where("user_id = ?", userID).Order("id").Find(&pets).Error
	return pets, err
}

// GetPet answers 404 for both a missing pet and someone else's pet.
func GetPet(userID, petID uint) (*models.Pet, error) {
	var pet models.Pet
	err := config.DB.Where("id = ? AND user_id = ?", petID, userID).First(&pet).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &pet, nil
}

func CreatePet(userID uint, input PetInput) (*models.Pet, error) {
	birthday, err := parseBirthday(input.Birthday)
	if err != nil {
		return nil, err
	}

	sex := input.Sex
	if sex == "" {
		sex = models.SexFemale
	}
	if !models.ValidSex(sex) {
		return nil, validationErr("sex", "must be MALE or FEMALE")
	}

	pet := models.Pet{
		UserID:   userID,
		PetName:  input.PetName,
		Breed:    input.Breed,
		Sex:      sex,
		Birthday: birthday,
	}

	if input.Photo != "" {
		url, err := utils.UploadBase64Image(input.Photo, "pet-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		pet.PhotoURL = url
	}

	if err := config.DB.Create(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func UpdatePet(userID, petID uint, input PetInput) (*models.Pet, error) {
	pet, err := GetPet(userID, petID)
	if err != nil {
		return nil, err
	}

	birthday, err := parseBirthday(input.Birthday)
	if err != nil {
		return nil, err
	}
	sex := input.Sex
	if sex == "" {
		sex = models.SexFemale
	}
	if !models.ValidSex(sex) {
		return nil, validationErr("sex", "must be MALE or FEMALE")
	}

	if input.Photo != "" {
		url, err := utils.UploadBase64Image(input.Photo, "pet-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		pet.PhotoURL = url
	}

	pet.PetName = input.PetName
	pet.Breed = input.Breed
	pet.Sex = sex
	pet.Birthday = birthday

	if err := config.DB.Save(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

func PatchPet(userID, petID uint, patch PetPatch) (*models.Pet, error) {
	pet, err := GetPet(userID, petID)
	if err != nil {
		return nil, err
	}

	if patch.Birthday != nil {
		birthday, err := parseBirthday(*patch.Birthday)
		if err != nil {
			return nil, err
		}
		pet.Birthday = birthday
	}
	if patch.Sex != nil {
		if !models.ValidSex(*patch.Sex) {
			return nil, validationErr("sex", "must be MALE or FEMALE")
		}
		pet.Sex = *patch.Sex
	}
	if patch.Photo != nil && *patch.Photo != "" {
		url, err := utils.UploadBase64Image(*patch.Photo, "pet-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		pet.PhotoURL = url
	}
	if patch.PetName != nil {
		pet.PetName = *patch.PetName
	}
	if patch.Breed != nil {
		pet.Breed = *patch.Breed
	}

	if err := config.DB.Save(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// DeletePet hard-deletes the pet and everything hanging off it in one
// transaction.
func DeletePet(userID, petID uint) error {
	pet, err := GetPet(userID, petID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&models.CalendarEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&models.JournalEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(pet).Error
	})
}
