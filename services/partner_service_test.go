package services_test

import (
	"testing"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPartner(t *testing.T, name string) *models.SitePartner {
	t.Helper()
	partner := models.SitePartner{
		SiteName: name,
		SiteURL:  "https://" + name + ".example.com",
		Category: "grooming",
		Rating:   4.5,
	}
	require.NoError(t, config.DB.Create(&partner).Error)
	return &partner
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")
	partner := createPartner(t, "pawsome")

	require.NoError(t, services.AddToWatchlist(user.ID, partner.ID))
	require.NoError(t, services.AddToWatchlist(user.ID, partner.ID))

	list, err := services.ListWatchlist(user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWatchlistIsPerUser(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	partner := createPartner(t, "pawsome")

	require.NoError(t, services.AddToWatchlist(alice.ID, partner.ID))

	bobList, err := services.ListWatchlist(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobList)
}

func TestWatchlistRemove(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")
	partner := createPartner(t, "pawsome")

	require.NoError(t, services.AddToWatchlist(user.ID, partner.ID))
	require.NoError(t, services.RemoveFromWatchlist(user.ID, partner.ID))

	list, err := services.ListWatchlist(user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, services.RemoveFromWatchlist(user.ID, partner.ID), services.ErrNotFound)
}

func TestWatchlistUnknownPartner(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")

	assert.ErrorIs(t, services.AddToWatchlist(user.ID, 9999), services.ErrNotFound)
}

func TestListPartnersSorted(t *testing.T) {
	setupTestDB(t)
	createPartner(t, "zoovet")
	createPartner(t, "aquarium")

	partners, err := services.ListPartners()
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "aquarium", partners[0].SiteName)
}
