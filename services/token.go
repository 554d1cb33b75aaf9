package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"eldercare/config"
	appErrors "eldercare/errors"
)

// TokenInfo identifies the bearer of an access token. Type is "admin"
// or "user"; Role carries the user role for family-member tokens.
type TokenInfo struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
	Role string `json:"role"`
}

type Claims struct {
	TokenInfo TokenInfo `json:"tokeninfo"`
	jwt.StandardClaims
}

func signingKey() []byte {
	return []byte(config.GetEnvDefault("SECRET_KEY_ACCESS_TOKEN", "eldercare-dev-secret"))
}

// GenerateToken signs an HS256 access token valid for expiryMinutes
func GenerateToken(info TokenInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		TokenInfo: info,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ParseToken verifies the signature and expiry and returns the bearer
func ParseToken(tokenString string) (*TokenInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.NewAppError(appErrors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.NewAppError(appErrors.ErrCodeInvalidToken, "invalid or expired token", err)
	}
	return &claims.TokenInfo, nil
}
