package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Generate("a@x.com", "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := tm.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "user")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", -1*time.Second)

	tok, err := tm.Generate("a@x.com", "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := tm.Validate(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Generate("a@x.com", "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", time.Hour).Validate(tok); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.Validate("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("mw-secret", time.Hour)

	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := tm.Middleware()(next)

	// Missing header is rejected before any verification.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", rec.Code)
	}

	// A header without a bearer token is also 401.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("malformed header: expected 401, got %d", rec.Code)
	}

	// A tampered token is 403.
	tok, err := tm.Generate("a@x.com", "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok+"x")
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("tampered token: expected 403, got %d", rec.Code)
	}

	// A valid token passes through with claims on the context.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d", rec.Code)
	}
	if gotClaims == nil || gotClaims.Email != "a@x.com" {
		t.Fatalf("claims not attached to context: %+v", gotClaims)
	}
}
