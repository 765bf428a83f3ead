// ABOUTME: Tests for the session token auth gate
// ABOUTME: Verifies rejection kinds and claims propagation

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fmartineau/retraite-mobile-bff/token"
)

func TestAuthRejectsMissingToken(t *testing.T) {
	codec := token.NewCodec("test-secret")
	handler := Auth(codec)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body["error"] != "missing_token" {
		t.Errorf("error kind = %q, want missing_token", body["error"])
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	codec := token.NewCodec("test-secret")
	handler := Auth(codec)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "wrong secret", header: "Bearer " + mustIssue(t, token.NewCodec("other-secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profil", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthPassesClaimsToHandler(t *testing.T) {
	codec := token.NewCodec("test-secret")

	var got *token.Claims
	handler := Auth(codec)(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer "+mustIssue(t, codec))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil {
		t.Fatal("GetClaims() = nil inside protected handler")
	}
	if got.Particip != 1611830 {
		t.Errorf("Particip = %d, want 1611830", got.Particip)
	}
	if got.UpstreamToken != "upstream-credential" {
		t.Errorf("UpstreamToken = %q, want verbatim credential", got.UpstreamToken)
	}
}

func TestGetClaimsWithoutGate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if claims := GetClaims(req); claims != nil {
		t.Errorf("GetClaims() = %+v, want nil", claims)
	}
}

func mustIssue(t *testing.T, codec *token.Codec) string {
	t.Helper()
	signed, err := codec.Issue(1611830, token.DisplayName{FirstName: "Jeremy", LastName: "Martin"}, "upstream-credential")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return signed
}
