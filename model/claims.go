package model

import "github.com/golang-jwt/jwt/v5"

// TokenType discriminates signed token kinds. Only access tokens are
// issued through the JWT path today; the discriminator guards against
// cross-use if other kinds are added later.
type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

type AppClaims struct {
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}
