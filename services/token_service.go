package services

import (
	"errors"
	"strings"
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"gorm.io/gorm"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IssueTokens mints a fresh access+refresh pair for a just-authenticated user.
func IssueTokens(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(user.ID, user.FullName)
	if err != nil {
		return nil, err
	}
	refresh, _, _, err := utils.GenerateRefreshToken(user.ID, user.FullName)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked and a
// new pair is issued. A revoked, expired or malformed token fails the same way.
func RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, _, ok := utils.ClaimsSubject(claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	jti := utils.ClaimsJTI(claims)
	if jti == "" || isTokenRevoked(jti) {
		return nil, ErrInvalidToken
	}

	// Token subjects can go stale; the user row is authoritative.
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if err := revokeJTI(jti, userID, utils.ClaimsExpiry(claims)); err != nil {
		return nil, err
	}
	return IssueTokens(&user)
}

// RevokeRefreshToken implements logout. Revoking the same token twice is a
// no-op, not an error.
func RevokeRefreshToken(refreshToken string) error {
	claims, err := utils.ParseToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return ErrInvalidToken
	}
	userID, _, _ := utils.ClaimsSubject(claims)
	jti := utils.ClaimsJTI(claims)
	if jti == "" {
		return ErrInvalidToken
	}
	return revokeJTI(jti, userID, utils.ClaimsExpiry(claims))
}

func isTokenRevoked(jti string) bool {
	var revoked models.RevokedToken
	return config.DB.Where("jti = ?", jti).First(&revoked).Error == nil
}

func revokeJTI(jti string, userID uint, expiresAt time.Time) error {
	err := config.DB.Create(&models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

// PurgeExpiredTokens drops denylist rows whose tokens have expired anyway.
func PurgeExpiredTokens() error {
	return config.DB.Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{}).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
