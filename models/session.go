package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the backend-issued credentials for an authenticated user.
// The access token goes into the Authorization header of every data request;
// the refresh token exchanges an expired session for a fresh one.
type Session struct {
	// AccessToken is the compact JWS access token issued by the backend.
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token used to renew an expired session.
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the access token expiry instant.
	ExpiresAt time.Time `json:"expires_at"`

	// UserID is the authenticated identity id ("sub" claim).
	UserID string `json:"user_id"`

	// Email is the authenticated login identifier.
	Email string `json:"email"`
}

// Expired reports whether the access token is past (or within skew of) its
// expiry. A small skew avoids presenting a token that dies in flight.
func (s Session) Expired(skew time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Add(skew).After(s.ExpiresAt)
}

// FillFromToken parses the unverified claims of the access token and fills
// UserID and ExpiresAt when the backend response did not carry them
// explicitly. Signature verification belongs to the backend; the client only
// inspects claims it received over TLS from the issuer itself.
func (s *Session) FillFromToken() error {
	if s.AccessToken == "" {
		return nil
	}

	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(s.AccessToken, &claims); err != nil {
		return err
	}

	if s.UserID == "" {
		s.UserID = claims.Subject
	}
	if s.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return nil
}
