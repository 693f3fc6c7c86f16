package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fridayfive/backend/pkg/auth"
)

// AuthHandler gates the admin dashboard behind one shared password. This is
// a UI-state gate, not a security boundary: anyone with the password gets the
// single admin identity.
type AuthHandler struct {
	adminPassword string
	sessionSecret []byte
}

// NewAuthHandler creates an AuthHandler with the configured password and
// session signing secret.
func NewAuthHandler(adminPassword string, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{adminPassword: adminPassword, sessionSecret: sessionSecret}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On a password match it sets the signed
// session cookie, which persists the authenticated flag across page loads.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !auth.CheckPassword(req.Password, h.adminPassword) {
		slog.Info("admin login rejected", "remote_addr", r.RemoteAddr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid_password"})
		return
	}

	token := auth.CreateSessionToken(auth.AdminSubject, h.sessionSecret)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

// Logout handles POST /api/auth/logout. It clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

// Me handles GET /api/auth/me. Clients call it on startup to restore the
// persisted authenticated flag before rendering the protected view.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"authenticated": false})
		return
	}
	if _, err := auth.VerifySessionToken(cookie.Value, h.sessionSecret); err != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"authenticated": false})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"authenticated": true})
}
