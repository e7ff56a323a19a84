package services_test

import (
	"testing"
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntryLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")
	pet := createPet(t, user.ID, "Rex")

	entry, err := services.CreateEntry(user.ID, services.JournalEntryInput{
		PetID:      pet.ID,
		EntryType:  models.EventTraining,
		EntryTitle: "Learned sit",
	})
	require.NoError(t, err)
	createdAt := entry.CreatedAt

	updated, err := services.UpdateEntry(user.ID, entry.ID, services.JournalEntryInput{
		PetID:      pet.ID,
		EntryType:  models.EventOther,
		EntryTitle: "Learned sit and stay",
	})
	require.NoError(t, err)
	assert.Equal(t, "Learned sit and stay", updated.EntryTitle)
	assert.WithinDuration(t, createdAt, updated.CreatedAt, time.Second, "creation timestamp is immutable")

	require.NoError(t, services.DeleteEntry(user.ID, entry.ID))
	_, err = services.GetEntry(user.ID, entry.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateEntryMovesBetweenOwnedPets(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	rex := createPet(t, alice.ID, "Rex")
	mila := createPet(t, alice.ID, "Mila")
	stray := createPet(t, bob.ID, "Stray")

	entry, err := services.CreateEntry(alice.ID, services.JournalEntryInput{
		PetID:      rex.ID,
		EntryType:  models.EventGrooming,
		EntryTitle: "Trim",
	})
	require.NoError(t, err)

	moved, err := services.UpdateEntry(alice.ID, entry.ID, services.JournalEntryInput{
		PetID:      mila.ID,
		EntryType:  models.EventGrooming,
		EntryTitle: "Trim",
	})
	require.NoError(t, err)
	assert.Equal(t, mila.ID, moved.PetID)

	// not onto someone else's pet
	_, err = services.UpdateEntry(alice.ID, entry.ID, services.JournalEntryInput{
		PetID:      stray.ID,
		EntryType:  models.EventGrooming,
		EntryTitle: "Trim",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJournalOwnershipFailsClosed(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	pet := createPet(t, alice.ID, "Rex")

	entry, err := services.CreateEntry(alice.ID, services.JournalEntryInput{
		PetID:      pet.ID,
		EntryType:  models.EventBath,
		EntryTitle: "Bath day",
	})
	require.NoError(t, err)

	_, err = services.GetEntry(bob.ID, entry.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	entries, err := services.ListEntries(bob.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalEntryTypeValidation(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")
	pet := createPet(t, user.ID, "Rex")

	_, err := services.CreateEntry(user.ID, services.JournalEntryInput{
		PetID:      pet.ID,
		EntryType:  "DIARY",
		EntryTitle: "x",
	})
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
