// file: router/router_test.go

package router_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-marketing-api/handler"
	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/router"
	"ai-marketing-api/service"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// fakeUserRepo is an in-memory IUserRepository so full HTTP flows run
// without a database.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: map[int]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserByID(id int) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) TouchLastLogin(id int) error { return nil }

// fakeTokenRepo is an in-memory refresh token ledger. Claim mirrors the
// SQL conditional update: it only succeeds on an unrevoked, unexpired
// row and revokes it in the same step.
type fakeTokenRepo struct {
	mu     sync.Mutex
	nextID int
	byHash map[string]*model.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{nextID: 1, byHash: map[string]*model.RefreshToken{}}
}

func (f *fakeTokenRepo) Create(token *model.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	token.ID = f.nextID
	token.CreatedAt = time.Now()
	f.nextID++
	copied := *token
	f.byHash[token.TokenHash] = &copied
	return nil
}

func (f *fakeTokenRepo) GetActiveByTokenHash(tokenHash string) (*model.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, ok := f.byHash[tokenHash]
	if !ok || token.RevokedAt.Valid {
		return nil, sql.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokenRepo) Revoke(tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token, ok := f.byHash[tokenHash]; ok && !token.RevokedAt.Valid {
		token.RevokedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	return nil
}

func (f *fakeTokenRepo) Claim(tokenHash string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, ok := f.byHash[tokenHash]
	if !ok || token.RevokedAt.Valid || !time.Now().Before(token.ExpiresAt) {
		return 0, sql.ErrNoRows
	}
	token.RevokedAt = sql.NullTime{Time: time.Now(), Valid: true}
	return token.UserID, nil
}

func newTestRouter() (http.Handler, *fakeUserRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	authService := service.NewAuthService(users, tokens, service.AuthConfig{
		SecretKey:  "router-test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})

	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(authService, users),
	}
	return router.NewRouter(handlers, authService, users, "http://localhost:3000"), users
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func refreshCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	return nil
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter()
	rr := doJSON(t, r, "GET", "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"healthy"`)
}

func TestSignupFlow(t *testing.T) {
	r, _ := newTestRouter()

	t.Run("creates account and sets refresh cookie", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/signup",
			`{"name":"Jane","email":"Jane@Example.com","password":"password123"}`, nil)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		// Email is normalized to lowercase at signup.
		assert.Equal(t, "jane@example.com", resp.User.Email)

		cookie := refreshCookie(rr)
		assert.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/signup",
			`{"name":"Jane Again","email":"jane@example.com","password":"password456"}`, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/signup",
			`{"name":"Shorty","email":"short@example.com","password":"tiny"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLoginFlow(t *testing.T) {
	r, users := newTestRouter()
	doJSON(t, r, "POST", "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`, nil)

	t.Run("successful login", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/login",
			`{"email":"jane@example.com","password":"password123"}`, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotNil(t, refreshCookie(rr))
	})

	t.Run("uppercase email still logs in", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/login",
			`{"email":"JANE@EXAMPLE.COM","password":"password123"}`, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/login",
			`{"email":"jane@example.com","password":"wrongpassword"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/login",
			`{"email":"nobody@example.com","password":"password123"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("account without password credentials", func(t *testing.T) {
		assert.NoError(t, users.CreateUser(&model.User{
			Email:    "oauth-only@example.com",
			Name:     "OAuth Only",
			GoogleID: "google-123",
		}))

		rr := doJSON(t, r, "POST", "/api/auth/login",
			`{"email":"oauth-only@example.com","password":"password123"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProtectedRoutes(t *testing.T) {
	r, _ := newTestRouter()
	rr := doJSON(t, r, "POST", "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`, nil)
	var signup struct {
		AccessToken string `json:"access_token"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &signup))

	t.Run("me with a valid token", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/auth/me", "", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signup.AccessToken)
		})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "jane@example.com")
	})

	t.Run("no authorization header", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("malformed scheme", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/auth/me", "", func(req *http.Request) {
			req.Header.Set("Authorization", "Token "+signup.AccessToken)
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/auth/me", "", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not.a.token")
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})
}

func TestRefreshRotation(t *testing.T) {
	r, _ := newTestRouter()
	rr := doJSON(t, r, "POST", "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`, nil)
	firstCookie := refreshCookie(rr)
	assert.NotNil(t, firstCookie)

	t.Run("rotation issues a new pair", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/refresh", "", func(req *http.Request) {
			req.AddCookie(firstCookie)
		})
		assert.Equal(t, http.StatusOK, rr.Code)

		newCookie := refreshCookie(rr)
		assert.NotNil(t, newCookie)
		assert.NotEqual(t, firstCookie.Value, newCookie.Value)
	})

	t.Run("replaying the consumed token fails", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/refresh", "", func(req *http.Request) {
			req.AddCookie(firstCookie)
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing cookie fails", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/refresh", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

// Two clients racing to rotate the same refresh token: the conditional
// claim lets exactly one through and 401s the rest.
func TestRefreshRotation_ConcurrentReplay(t *testing.T) {
	r, _ := newTestRouter()
	rr := doJSON(t, r, "POST", "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`, nil)
	cookie := refreshCookie(rr)
	assert.NotNil(t, cookie)

	const attempts = 8
	codes := make(chan int, attempts)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer done.Done()
			req := httptest.NewRequest("POST", "/api/auth/refresh", strings.NewReader(""))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			start.Wait()
			r.ServeHTTP(rec, req)
			codes <- rec.Code
		}()
	}
	start.Done()
	done.Wait()
	close(codes)

	succeeded, rejected := 0, 0
	for code := range codes {
		switch code {
		case http.StatusOK:
			succeeded++
		case http.StatusUnauthorized:
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestLogoutFlow(t *testing.T) {
	r, _ := newTestRouter()
	rr := doJSON(t, r, "POST", "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`, nil)
	cookie := refreshCookie(rr)
	assert.NotNil(t, cookie)

	t.Run("logout revokes and clears the cookie", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/logout", "", func(req *http.Request) {
			req.AddCookie(cookie)
		})
		assert.Equal(t, http.StatusOK, rr.Code)

		cleared := refreshCookie(rr)
		assert.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})

	t.Run("refresh after logout is rejected", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/refresh", "", func(req *http.Request) {
			req.AddCookie(cookie)
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("logout without a cookie still succeeds", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/auth/logout", "", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter()

	req, _ := http.NewRequest("OPTIONS", "/api/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}
