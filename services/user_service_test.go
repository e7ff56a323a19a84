package services_test

import (
	"testing"

	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileReplacesAndRehashes(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")

	updated, err := services.UpdateProfile(user.ID, services.ProfileInput{
		FullName: "Anna",
		Email:    "anna@x.com",
		Password: "new-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "Anna", updated.FullName)
	assert.Equal(t, "anna@x.com", updated.Email)
	assert.True(t, utils.CheckPasswordHash("new-password", updated.Password))
	assert.False(t, utils.CheckPasswordHash("password123", updated.Password))
}

func TestPatchProfileMergesOnlySuppliedFields(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")

	name := "Renamed"
	patched, err := services.PatchProfile(user.ID, services.ProfilePatch{FullName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", patched.FullName)
	assert.Equal(t, "a@x.com", patched.Email)
	assert.True(t, utils.CheckPasswordHash("password123", patched.Password))
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	setupTestDB(t)
	createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")

	_, err := services.UpdateProfile(bob.ID, services.ProfileInput{
		FullName: "B",
		Email:    "a@x.com",
	})
	assert.ErrorIs(t, err, services.ErrEmailExists)
}
