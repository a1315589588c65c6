package model

import "time"

// User is an identity row. PasswordHash and Salt are empty for accounts
// provisioned through an external identity provider; those accounts
// cannot authenticate with a password.
type User struct {
	ID           int       `json:"id"`
	GoogleID     string    `json:"-"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}
