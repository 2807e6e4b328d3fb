// Package auth issues and validates member access tokens.
package auth

import (
	"errors"
	"time"

	"cardpay/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateMemberToken mints a signed access token for a member.
func GenerateMemberToken(memberNumber int64, secret string, ttl time.Duration) (string, error) {
	claims := &models.MemberClaims{
		MemberNumber: memberNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseMemberToken validates a token and returns its claims.
func ParseMemberToken(tokenString, secret string) (*models.MemberClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.MemberClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.MemberClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
