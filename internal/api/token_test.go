package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims staffClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParseStaffToken(t *testing.T) {
	exp := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	raw := signedToken(t, staffClaims{
		Name:  "Priya Shah",
		Role:  "host",
		Venue: "harborview",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff-42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	info, err := ParseStaffToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "staff-42", info.StaffID)
	assert.Equal(t, "Priya Shah", info.Name)
	assert.Equal(t, "host", info.Role)
	assert.Equal(t, "harborview", info.Venue)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestParseStaffToken_Garbage(t *testing.T) {
	_, err := ParseStaffToken("not-a-jwt")
	assert.Error(t, err)
}

func TestStaffInfo_ExpiresSoon(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)

	soon := StaffInfo{ExpiresAt: now.Add(20 * time.Minute)}
	assert.True(t, soon.ExpiresSoon(now, time.Hour))
	assert.False(t, soon.ExpiresSoon(now, 10*time.Minute))

	// No exp claim: never warns.
	assert.False(t, StaffInfo{}.ExpiresSoon(now, time.Hour))
}
