package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	sessions     *service.SessionService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *service.SessionService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookieSecure: cookieSecure}
}

// HandleRegister processes the signup form.
// POST /register with fields username, password.
// Redirects to /login on success.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "That username is already taken.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, "Username and password are required.")
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLogin processes the login form.
// POST /login with fields username, password.
// Sets the session cookie and redirects to / on success. Unknown usernames
// and wrong passwords get the same message so the endpoint does not confirm
// which accounts exist.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.auth.Verify(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) || errors.Is(err, domain.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		slog.Error("verify credentials", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	token, err := h.sessions.Start(user.ID)
	if err != nil {
		slog.Error("start session", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout ends the current session and clears the cookie.
// POST /logout, guarded by RequireAuth: without an active session the
// middleware denies and this handler never runs.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	if err := h.sessions.End(cookie.Value); err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
