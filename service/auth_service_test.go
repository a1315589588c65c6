package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-marketing-api/model"
)

type mockUserRepoForAuthSvc struct{ mock.Mock }

func (m *mockUserRepoForAuthSvc) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepoForAuthSvc) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepoForAuthSvc) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepoForAuthSvc) TouchLastLogin(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockTokenRepoForAuthSvc struct{ mock.Mock }

func (m *mockTokenRepoForAuthSvc) Create(token *model.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *mockTokenRepoForAuthSvc) GetActiveByTokenHash(tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}

func (m *mockTokenRepoForAuthSvc) Revoke(tokenHash string) error {
	args := m.Called(tokenHash)
	return args.Error(0)
}

func (m *mockTokenRepoForAuthSvc) Claim(tokenHash string) (int, error) {
	args := m.Called(tokenHash)
	return args.Int(0), args.Error(1)
}

func testAuthConfig() AuthConfig {
	return AuthConfig{
		SecretKey:  "test-secret-key",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := NewAuthService(nil, nil, testAuthConfig())
	password := "mySecretPassword123"

	hash, salt, err := authService.HashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, password, hash)

	assert.True(t, authService.CheckPassword(password, hash, salt))
	assert.False(t, authService.CheckPassword("notMyPassword", hash, salt))
	// Same password with the wrong salt must also fail.
	assert.False(t, authService.CheckPassword(password, hash, "0000000000000000"))
}

func TestAuthService_HashPassword_UniqueSalts(t *testing.T) {
	authService := NewAuthService(nil, nil, testAuthConfig())

	hash1, salt1, err := authService.HashPassword("samePassword!")
	assert.NoError(t, err)
	hash2, salt2, err := authService.HashPassword("samePassword!")
	assert.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestAuthService_AccessTokenRoundTrip(t *testing.T) {
	authService := NewAuthService(nil, nil, testAuthConfig())

	tokenString, err := authService.GenerateAccessToken(42, "jane@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, ok := authService.VerifyAccessToken(tokenString)
	assert.True(t, ok)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, model.TokenTypeAccess, claims.TokenType)
}

func TestAuthService_VerifyAccessToken_Failures(t *testing.T) {
	authService := NewAuthService(nil, nil, testAuthConfig())

	t.Run("garbage input", func(t *testing.T) {
		_, ok := authService.VerifyAccessToken("not-a-token")
		assert.False(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(nil, nil, AuthConfig{
			SecretKey:  "different-secret",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		})
		tokenString, err := other.GenerateAccessToken(1, "a@b.com")
		assert.NoError(t, err)

		_, ok := authService.VerifyAccessToken(tokenString)
		assert.False(t, ok)
	})
}

// TestAuthService_AccessTokenExpiryBoundary pins the expiry semantics: a
// token is accepted strictly before its expiry instant and rejected at
// and after it.
func TestAuthService_AccessTokenExpiryBoundary(t *testing.T) {
	authService := NewAuthService(nil, nil, testAuthConfig())

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := issuedAt.Add(15 * time.Minute)

	authService.now = func() time.Time { return issuedAt }
	tokenString, err := authService.GenerateAccessToken(7, "boundary@example.com")
	assert.NoError(t, err)

	t.Run("one second before expiry", func(t *testing.T) {
		authService.now = func() time.Time { return expiry.Add(-time.Second) }
		_, ok := authService.VerifyAccessToken(tokenString)
		assert.True(t, ok)
	})

	t.Run("at expiry", func(t *testing.T) {
		authService.now = func() time.Time { return expiry }
		_, ok := authService.VerifyAccessToken(tokenString)
		assert.False(t, ok)
	})

	t.Run("after expiry", func(t *testing.T) {
		authService.now = func() time.Time { return expiry.Add(time.Hour) }
		_, ok := authService.VerifyAccessToken(tokenString)
		assert.False(t, ok)
	})
}

func TestAuthService_GenerateRefreshToken(t *testing.T) {
	mockTokens := new(mockTokenRepoForAuthSvc)
	authService := NewAuthService(nil, mockTokens, testAuthConfig())

	var stored *model.RefreshToken
	mockTokens.On("Create", mock.MatchedBy(func(rec *model.RefreshToken) bool {
		stored = rec
		return rec.UserID == 42
	})).Return(nil).Once()

	raw, err := authService.GenerateRefreshToken(42)
	assert.NoError(t, err)
	// 32 random bytes, hex encoded.
	assert.Len(t, raw, 64)

	// The raw secret itself never reaches the ledger.
	assert.NotEqual(t, raw, stored.TokenHash)
	assert.Equal(t, hashToken(raw), stored.TokenHash)
	mockTokens.AssertExpectations(t)
}

func TestAuthService_VerifyRefreshToken(t *testing.T) {
	cfg := testAuthConfig()
	raw := "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"

	t.Run("active token resolves to its user", func(t *testing.T) {
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(nil, mockTokens, cfg)

		mockTokens.On("GetActiveByTokenHash", hashToken(raw)).Return(&model.RefreshToken{
			UserID:    42,
			TokenHash: hashToken(raw),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()

		userID, ok := authService.VerifyRefreshToken(raw)
		assert.True(t, ok)
		assert.Equal(t, 42, userID)
		mockTokens.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(nil, mockTokens, cfg)

		mockTokens.On("GetActiveByTokenHash", hashToken(raw)).Return(nil, sql.ErrNoRows).Once()

		_, ok := authService.VerifyRefreshToken(raw)
		assert.False(t, ok)
	})

	t.Run("expired token", func(t *testing.T) {
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(nil, mockTokens, cfg)

		mockTokens.On("GetActiveByTokenHash", hashToken(raw)).Return(&model.RefreshToken{
			UserID:    42,
			TokenHash: hashToken(raw),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil).Once()

		_, ok := authService.VerifyRefreshToken(raw)
		assert.False(t, ok)
	})
}

func TestAuthService_RotateRefreshToken(t *testing.T) {
	cfg := testAuthConfig()
	raw := "cafebabecafebabecafebabecafebabecafebabecafebabecafebabecafebabe"

	t.Run("successful rotation issues a fresh pair", func(t *testing.T) {
		mockUsers := new(mockUserRepoForAuthSvc)
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(mockUsers, mockTokens, cfg)

		mockTokens.On("Claim", hashToken(raw)).Return(42, nil).Once()
		mockUsers.On("GetUserByID", 42).Return(&model.User{ID: 42, Email: "jane@example.com"}, nil).Once()
		mockTokens.On("Create", mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

		accessToken, newRefresh, ok := authService.RotateRefreshToken(raw)
		assert.True(t, ok)
		assert.NotEmpty(t, newRefresh)
		assert.NotEqual(t, raw, newRefresh)

		claims, valid := authService.VerifyAccessToken(accessToken)
		assert.True(t, valid)
		assert.Equal(t, 42, claims.UserID)

		mockUsers.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("already-claimed token is rejected", func(t *testing.T) {
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(nil, mockTokens, cfg)

		mockTokens.On("Claim", hashToken(raw)).Return(0, sql.ErrNoRows).Once()

		_, _, ok := authService.RotateRefreshToken(raw)
		assert.False(t, ok)
		mockTokens.AssertExpectations(t)
	})

	t.Run("deleted user after claim keeps the token revoked", func(t *testing.T) {
		mockUsers := new(mockUserRepoForAuthSvc)
		mockTokens := new(mockTokenRepoForAuthSvc)
		authService := NewAuthService(mockUsers, mockTokens, cfg)

		mockTokens.On("Claim", hashToken(raw)).Return(42, nil).Once()
		mockUsers.On("GetUserByID", 42).Return(nil, sql.ErrNoRows).Once()

		_, _, ok := authService.RotateRefreshToken(raw)
		assert.False(t, ok)
		mockTokens.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	mockTokens := new(mockTokenRepoForAuthSvc)
	authService := NewAuthService(nil, mockTokens, testAuthConfig())
	raw := "feedfacefeedfacefeedfacefeedfacefeedfacefeedfacefeedfacefeedface"

	// Revoke is idempotent: the repository swallows repeat calls.
	mockTokens.On("Revoke", hashToken(raw)).Return(nil).Twice()

	assert.NoError(t, authService.RevokeRefreshToken(raw))
	assert.NoError(t, authService.RevokeRefreshToken(raw))
	mockTokens.AssertExpectations(t)
}
