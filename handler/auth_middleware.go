package handler

import (
	"context"
	"net/http"
	"strings"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
	"ai-marketing-api/service"
)

type contextKey string

const CurrentUserKey contextKey = "currentUser"

// CurrentUser pulls the authenticated user out of the request context.
// It only succeeds on requests that passed AuthMiddleware.
func CurrentUser(r *http.Request) (*model.User, bool) {
	user, ok := r.Context().Value(CurrentUserKey).(*model.User)
	return user, ok
}

// AuthMiddleware is the request gate: it turns a bearer access token
// into a fully loaded user on the request context, or rejects with a
// uniform 401. A valid token whose user has since been deleted is
// rejected with the same shape as a bad token.
func AuthMiddleware(auth *service.AuthService, users repository.IUserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.Unauthorized(nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.Unauthorized(nil).Send(w)
				return
			}

			claims, ok := auth.VerifyAccessToken(headerParts[1])
			if !ok {
				common.Unauthorized(nil).Send(w)
				return
			}

			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				common.Unauthorized(nil).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), CurrentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
