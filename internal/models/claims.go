package models

import "github.com/golang-jwt/jwt/v5"

// MemberClaims are the JWT claims carried by member access tokens.
type MemberClaims struct {
	MemberNumber int64 `json:"member_number"`
	jwt.RegisteredClaims
}
