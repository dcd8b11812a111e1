package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaffInfo is what the client reads out of its own access token for
// display and expiry warnings. Verification is the API's job; the client
// only decodes.
type StaffInfo struct {
	StaffID   string
	Name      string
	Role      string
	Venue     string
	ExpiresAt time.Time
}

type staffClaims struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Venue string `json:"venue"`
	jwt.RegisteredClaims
}

// ParseStaffToken decodes the access token without verifying its signature.
func ParseStaffToken(token string) (StaffInfo, error) {
	var claims staffClaims
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		return StaffInfo{}, fmt.Errorf("failed to decode access token: %w", err)
	}

	info := StaffInfo{
		StaffID: claims.Subject,
		Name:    claims.Name,
		Role:    claims.Role,
		Venue:   claims.Venue,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// ExpiresSoon reports whether the token runs out within the window. Tokens
// without an exp claim never expire from the client's point of view.
func (s StaffInfo) ExpiresSoon(now time.Time, window time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return s.ExpiresAt.Before(now.Add(window))
}
