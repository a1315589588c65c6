// file: model/token.go

package model

import (
	"database/sql"
	"time"
)

// RefreshToken holds the data for a refresh token in the database. Only a
// SHA-256 hash of the raw secret is ever stored; the raw secret leaves the
// server exactly once, in the Set-Cookie header.
type RefreshToken struct {
	ID        int          `json:"id"`
	UserID    int          `json:"user_id"`
	TokenHash string       `json:"-"` // The hash is not exposed in JSON responses.
	ExpiresAt time.Time    `json:"expires_at"`
	RevokedAt sql.NullTime `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

// Active reports whether the token can still be exchanged at the given
// instant: not revoked and not past its expiry.
func (t *RefreshToken) Active(now time.Time) bool {
	return !t.RevokedAt.Valid && now.Before(t.ExpiresAt)
}
