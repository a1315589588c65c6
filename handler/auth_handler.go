package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lib/pq"

	"ai-marketing-api/common"
	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
	"ai-marketing-api/service"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	auth  *service.AuthService
	users repository.IUserRepository
}

func NewAuthHandler(auth *service.AuthService, users repository.IUserRepository) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        *userProfile `json:"user,omitempty"`
}

type userProfile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// setRefreshCookie transports the raw refresh secret to the browser.
// HttpOnly keeps it away from scripts; SameSite=Lax keeps it off
// cross-site posts.
func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.auth.RefreshTTL() / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup godoc
// @Summary      Create an account
// @Description  Registers a new user and returns an access token; the refresh token is set as an HTTP-only cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.SignupRequest true "Signup payload"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SignupRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	if _, err := h.users.GetUserByEmail(email); err == nil {
		return common.NewAppError(http.StatusConflict, "User with this email already exists", nil)
	} else if err != sql.ErrNoRows {
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	hash, salt, err := h.auth.HashPassword(req.Password)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := h.users.CreateUser(user); err != nil {
		// Losing a concurrent signup race trips the unique constraint
		// here instead of at the pre-check above.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return common.NewAppError(http.StatusConflict, "User with this email already exists", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	accessToken, err := h.auth.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue tokens", err)
	}
	refreshToken, err := h.auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue tokens", err)
	}

	logger.Log.WithField("user_id", user.ID).Info("New user signed up")

	h.setRefreshCookie(w, r, refreshToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResponse{
		AccessToken: accessToken,
		User:        &userProfile{ID: user.ID, Name: user.Name, Email: user.Email},
	})
	return nil
}

// Login godoc
// @Summary      Password login
// @Description  Exchanges email/password for an access token and a refresh cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetUserByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return invalidCredentials()
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	// Accounts provisioned through an external identity provider carry
	// no password credentials and cannot password-login.
	if user.PasswordHash == "" || user.Salt == "" {
		return invalidCredentials()
	}
	if !h.auth.CheckPassword(req.Password, user.PasswordHash, user.Salt) {
		return invalidCredentials()
	}

	if err := h.users.TouchLastLogin(user.ID); err != nil {
		logger.Log.WithError(err).Warn("Failed to update last login")
	}

	accessToken, err := h.auth.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue tokens", err)
	}
	refreshToken, err := h.auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue tokens", err)
	}

	h.setRefreshCookie(w, r, refreshToken)
	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: accessToken,
		User:        &userProfile{ID: user.ID, Name: user.Name, Email: user.Email},
	})
	return nil
}

// invalidCredentials is shared by every login failure path so a caller
// cannot distinguish unknown email, missing credentials and wrong
// password.
func invalidCredentials() *common.AppError {
	return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
}

// Refresh godoc
// @Summary      Rotate the refresh token
// @Description  Exchanges the refresh cookie for a new access token and a new refresh cookie. Refresh tokens are single-use.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return common.Unauthorized(nil)
	}

	accessToken, newRefresh, ok := h.auth.RotateRefreshToken(cookie.Value)
	if !ok {
		return common.Unauthorized(nil)
	}

	h.setRefreshCookie(w, r, newRefresh)
	writeJSON(w, http.StatusOK, authResponse{AccessToken: accessToken})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the refresh token, if any, and clears the cookie. Always succeeds.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if cookie, err := r.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		if err := h.auth.RevokeRefreshToken(cookie.Value); err != nil {
			logger.Log.WithError(err).Warn("Failed to revoke refresh token on logout")
		}
	}

	h.clearRefreshCookie(w, r)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	return nil
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.User
// @Failure      401 {object} map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := CurrentUser(r)
	if !ok {
		return common.Unauthorized(nil)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
		"last_login": user.LastLogin,
	})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
