package models

import "time"

const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
)

type Pet struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   uint   `gorm:"index;not null"`
	PetName  string `gorm:"not null"`
	Breed    string
	Sex      string `gorm:"default:FEMALE"`
	Birthday time.Time
	PhotoURL string
}

func ValidSex(s string) bool {
	return s == SexMale || s == SexFemale
}
