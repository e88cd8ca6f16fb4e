package handler

import (
	"context"
	"net/http"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

const authCookieName = "auth_token"

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring an active session.
// It reads the session cookie, resolves the session to a user, and injects
// the user into the request context. Denies with 401 otherwise; the guarded
// handler never runs for an unauthenticated request.
func RequireAuth(auth *service.AuthService, sessions *service.SessionService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth, sessions)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService, sessions *service.SessionService) (*domain.User, error) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return nil, domain.ErrNoSession
	}

	userID, err := sessions.CurrentUser(cookie.Value)
	if err != nil {
		return nil, err
	}

	return auth.GetUserByID(r.Context(), userID)
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
