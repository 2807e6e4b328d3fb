package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemberTokenRoundTrip(t *testing.T) {
	token, err := GenerateMemberToken(1001, "test-secret", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseMemberToken(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, int64(1001), claims.MemberNumber)
}

func TestMemberTokenWrongSecret(t *testing.T) {
	token, err := GenerateMemberToken(1001, "test-secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseMemberToken(token, "other-secret")
	assert.Error(t, err)
}

func TestMemberTokenExpired(t *testing.T) {
	token, err := GenerateMemberToken(1001, "test-secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseMemberToken(token, "test-secret")
	assert.Error(t, err)
}
