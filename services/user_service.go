package services

import (
	"fmt"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
)

type ProfileInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Photo    string `json:"photo"` // base64 data-URL, optional
}

type ProfilePatch struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Photo    *string `json:"photo"`
}

func GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// UpdateProfile is the PUT path: every field is replaced. The photo is
// uploaded before anything is written so a storage failure leaves the row
// untouched.
func UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Photo != "" {
		url, err := utils.UploadBase64Image(input.Photo, "profile-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		user.PhotoURL = url
	}

	user.FullName = input.FullName
	user.Email = input.Email
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := config.DB.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// PatchProfile merges: only supplied fields change.
func PatchProfile(userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if patch.Photo != nil && *patch.Photo != "" {
		url, err := utils.UploadBase64Image(*patch.Photo, "profile-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		user.PhotoURL = url
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := config.DB.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}
