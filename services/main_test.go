package services_test

import (
	"testing"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func createUser(t *testing.T, email, fullName string) *models.User {
	t.Helper()
	user, err := services.RegisterUser(email, fullName, "password123")
	require.NoError(t, err)
	return user
}

func createPet(t *testing.T, userID uint, name string) *models.Pet {
	t.Helper()
	pet, err := services.CreatePet(userID, services.PetInput{
		PetName:  name,
		Breed:    "Corgi",
		Sex:      models.SexMale,
		Birthday: "2020-05-10",
	})
	require.NoError(t, err)
	return pet
}
