package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler(t *testing.T, calledSubject *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := SubjectFromContext(r.Context())
		if !ok {
			t.Error("expected subject in context")
		}
		*calledSubject = subject
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidSession(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	var subject string
	handler := RequireAuth(secret)(okHandler(t, &subject))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: CreateSessionToken(AdminSubject, secret)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if subject != AdminSubject {
		t.Errorf("expected subject=%q, got %q", AdminSubject, subject)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	handler := RequireAuth(SessionSecretBytes("test-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := RequireAuth(SessionSecretBytes("test-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached with a bad session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "garbage.token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestDevAuth_InjectsAdminSubject(t *testing.T) {
	var subject string
	handler := DevAuth(okHandler(t, &subject))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if subject != AdminSubject {
		t.Errorf("expected subject=%q, got %q", AdminSubject, subject)
	}
}
