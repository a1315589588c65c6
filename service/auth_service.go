package service

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig carries the externally supplied token parameters.
type AuthConfig struct {
	SecretKey  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService owns the token lifecycle: password hashing, access token
// issuance and verification, and the refresh token ledger. Refresh
// tokens are single-use; rotation claims the old record atomically
// before a replacement is minted.
type AuthService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
	cfg       AuthConfig

	// now is replaceable in tests for expiry boundary checks.
	now func() time.Time
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository, cfg AuthConfig) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// HashPassword generates a fresh random salt and returns the bcrypt hash
// of password+salt together with the salt. Both values are persisted on
// the user row.
func (s *AuthService) HashPassword(password string) (string, string, error) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", "", err
	}
	return string(hash), salt, nil
}

// CheckPassword verifies a plaintext password against a stored hash+salt
// pair. bcrypt's comparison is constant time; a wrong password and an
// unknown salt are indistinguishable to the caller.
func (s *AuthService) CheckPassword(password, hash, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+salt)) == nil
}

// GenerateAccessToken mints a short-lived signed token for the identity.
func (s *AuthService) GenerateAccessToken(userID int, email string) (string, error) {
	issuedAt := s.now()
	claims := &model.AppClaims{
		UserID:    userID,
		Email:     email,
		TokenType: model.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.AccessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		logger.Log.WithError(err).WithField("email", email).Error("Failed to sign access token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// VerifyAccessToken checks signature, expiry and the token type
// discriminator. It degrades every failure to (nil, false); callers map
// that to a uniform 401 without learning which check failed.
func (s *AuthService) VerifyAccessToken(tokenString string) (*model.AppClaims, bool) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.TokenType != model.TokenTypeAccess {
		return nil, false
	}
	// A token is valid strictly before its expiry instant.
	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return nil, false
	}
	return claims, true
}

// GenerateRefreshToken mints a high-entropy opaque secret, records its
// SHA-256 hash in the ledger and hands the raw secret back. The raw
// value is never stored; losing it means the record can never be matched
// again.
func (s *AuthService) GenerateRefreshToken(userID int) (string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	raw := hex.EncodeToString(secret)

	record := &model.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(raw),
		ExpiresAt: s.now().Add(s.cfg.RefreshTTL),
	}
	if err := s.tokenRepo.Create(record); err != nil {
		return "", err
	}
	return raw, nil
}

// VerifyRefreshToken resolves a raw secret to its owning user id without
// consuming it. Revoked, expired and unknown tokens all come back as
// (0, false).
func (s *AuthService) VerifyRefreshToken(raw string) (int, bool) {
	record, err := s.tokenRepo.GetActiveByTokenHash(hashToken(raw))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to look up refresh token")
		}
		return 0, false
	}
	if !record.Active(s.now()) {
		return 0, false
	}
	return record.UserID, true
}

// RevokeRefreshToken retires a refresh token. It is a silent no-op for
// already-revoked or unknown tokens.
func (s *AuthService) RevokeRefreshToken(raw string) error {
	return s.tokenRepo.Revoke(hashToken(raw))
}

// RotateRefreshToken exchanges a still-valid refresh token for a new
// access/refresh pair. The old record is claimed (revoked) in one
// conditional update before anything new is minted, so a duplicate
// rotation attempt on the same secret cannot also succeed.
func (s *AuthService) RotateRefreshToken(raw string) (accessToken, newRefresh string, ok bool) {
	userID, err := s.tokenRepo.Claim(hashToken(raw))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to claim refresh token")
		}
		return "", "", false
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		// The identity vanished between claim and lookup; the consumed
		// token stays revoked.
		return "", "", false
	}

	accessToken, err = s.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", false
	}
	newRefresh, err = s.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", false
	}
	return accessToken, newRefresh, true
}

// RefreshTTL exposes the configured refresh token lifetime for cookie
// expiry.
func (s *AuthService) RefreshTTL() time.Duration {
	return s.cfg.RefreshTTL
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
