package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Panelde tek bir kullanıcı vardır; token konusu sabittir.
const PanelSubject = "panel"

const TokenTTL = 24 * time.Hour

type JWTCustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, now time.Time) (string, time.Time, error) {
	expires := now.Add(TokenTTL) // 1 gün
	claims := &JWTCustomClaims{
		Role: PanelSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   PanelSubject,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}
