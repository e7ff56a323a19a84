package services

import (
	"errors"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"gorm.io/gorm"
)

func RegisterUser(email, fullName, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		FullName: fullName,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser returns the same error for an unknown email and a wrong
// password so a caller cannot probe which addresses have accounts.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
