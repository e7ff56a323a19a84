package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Signing with an empty key would mint tokens anyone can forge.
func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func accessTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("JWT_ACCESS_TTL_MIN")); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return 15 * time.Minute
}

func refreshTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("JWT_REFRESH_TTL_HOURS")); err == nil && v > 0 {
		return time.Duration(v) * time.Hour
	}
	return 168 * time.Hour
}

// GenerateAccessToken mints a short-lived token whose "sub" claim is an
// extensible map carrying the user id and display name.
func GenerateAccessToken(userID uint, fullName string) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": map[string]any{"id": userID, "fullname": fullName},
		"typ": TokenTypeAccess,
		"iat": now.Unix(),
		"exp": now.Add(accessTTL()).Unix(),
	})
	return token.SignedString(secret)
}

// GenerateRefreshToken mints a longer-lived token with a unique JTI so it
// can be revoked individually. Returns the token, its JTI and its expiry.
func GenerateRefreshToken(userID uint, fullName string) (string, string, time.Time, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", time.Time{}, err
	}
	now := time.Now()
	exp := now.Add(refreshTTL())
	jti := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": map[string]any{"id": userID, "fullname": fullName},
		"typ": TokenTypeRefresh,
		"jti": jti,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, jti, exp, nil
}

// ParseToken validates signature and expiry and checks the token kind
// ("access" or "refresh"). Anything off returns ErrInvalidToken.
func ParseToken(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		secret, err := jwtSecret()
		if err != nil {
			return nil, err
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimsSubject pulls the user id and display name out of the "sub" map.
func ClaimsSubject(claims jwt.MapClaims) (uint, string, bool) {
	sub, ok := claims["sub"].(map[string]any)
	if !ok {
		return 0, "", false
	}
	fullName, _ := sub["fullname"].(string)
	switch id := sub["id"].(type) {
	case float64: // JSON round-trip turns numbers into float64
		return uint(id), fullName, true
	case uint:
		return id, fullName, true
	}
	return 0, "", false
}

func ClaimsJTI(claims jwt.MapClaims) string {
	jti, _ := claims["jti"].(string)
	return jti
}

func ClaimsExpiry(claims jwt.MapClaims) time.Time {
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}
