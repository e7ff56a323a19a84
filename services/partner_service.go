package services

import (
	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
)

func ListPartners() ([]models.SitePartner, error) {
	var partners []models.SitePartner
	err := config.DB.Order("site_name").Find(&partners).Error
	return partners, err
}

func ListWatchlist(userID uint) ([]models.SitePartner, error) {
	var partners []models.SitePartner
	err := config.DB.
		Joins("JOIN watchlist_entries ON watchlist_entries.site_partner_id = site_partners.id").
		Where("watchlist_entries.user_id = ?", userID).
		Order("site_partners.site_name").
		Find(&partners).Error
	return partners, err
}

// AddToWatchlist is idempotent: adding a partner twice is not an error.
func AddToWatchlist(userID, partnerID uint) error {
	var partner models.SitePartner
	if err := config.DB.First(&partner, partnerID).Error; err != nil {
		return ErrNotFound
	}
	err := config.DB.Create(&models.WatchlistEntry{
		UserID:        userID,
		SitePartnerID: partnerID,
	}).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

func RemoveFromWatchlist(userID, partnerID uint) error {
	res := config.DB.
		Where("user_id = ? AND site_partner_id = ?", userID, partnerID).
		Delete(&models.WatchlistEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
