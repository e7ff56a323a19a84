package models

import "time"

// SitePartner is a directory entry with no owner; the list is seeded
// out of band and read-only over the API.
type SitePartner struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	SiteName string  `gorm:"not null" json:"site_name"`
	SiteURL  string  `gorm:"not null" json:"site_url"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	PhotoURL string  `json:"photo_url"`
}

type WatchlistEntry struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID        uint `gorm:"not null;uniqueIndex:idx_user_partner"`
	SitePartnerID uint `gorm:"not null;uniqueIndex:idx_user_partner"`
}
