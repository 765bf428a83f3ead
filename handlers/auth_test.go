// ABOUTME: Tests for login, refresh and logout
// ABOUTME: Exercises the in-body status protocol and token encapsulation

package handlers

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/token"
)

// fakeUpstreamToken builds an unsigned JWT-shaped credential the way the
// upstream issues them, with name claims in the payload.
func fakeUpstreamToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".sig"
}

func loginUpstream(response string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/Auth/connexion", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	})
	return mux
}

func postLogin(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	cred := fakeUpstreamToken(`{"particip":1611830,"nom":"Martin","prenom":"Jeremy"}`)
	mux, codec := newTestMux(t, loginUpstream(`{"statutConnexion":1,"access_token":"`+cred+`","token_type":"Bearer","expires_in":3600}`))

	rec := postLogin(t, mux, `{"identifier":"1611830","secret":"dev"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if resp.Token == "" {
		t.Fatal("token is empty")
	}

	// The minted session token must verify and embed the upstream
	// credential verbatim.
	claims, err := codec.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify(minted token) error = %v", err)
	}
	if claims.Particip != 1611830 {
		t.Errorf("Particip = %d, want 1611830", claims.Particip)
	}
	if claims.UpstreamToken != cred {
		t.Errorf("UpstreamToken = %q, want the upstream credential verbatim", claims.UpstreamToken)
	}
	if claims.FirstName != "Jeremy" || claims.LastName != "Martin" {
		t.Errorf("name claims = %q %q", claims.FirstName, claims.LastName)
	}
}

func TestLoginSuccessOpaqueCredential(t *testing.T) {
	// A credential that is not JWT-shaped must still work; the name decode
	// is best-effort.
	mux, codec := newTestMux(t, loginUpstream(`{"statutConnexion":1,"access_token":"fully-opaque","expires_in":1800}`))

	rec := postLogin(t, mux, `{"identifier":"1611830","secret":"dev"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	if resp.ExpiresIn != 1800 {
		t.Errorf("expiresIn = %d, want upstream 1800", resp.ExpiresIn)
	}

	claims, err := codec.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UpstreamToken != "fully-opaque" {
		t.Errorf("UpstreamToken = %q", claims.UpstreamToken)
	}
	if claims.FirstName != "" || claims.LastName != "" {
		t.Errorf("name claims = %q %q, want empty", claims.FirstName, claims.LastName)
	}
}

func TestLoginExpiresInDefault(t *testing.T) {
	mux, _ := newTestMux(t, loginUpstream(`{"statutConnexion":1,"access_token":"cred"}`))

	rec := postLogin(t, mux, `{"identifier":"1611830","secret":"dev"}`)
	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600 default", resp.ExpiresIn)
	}
}

func TestLoginRejections(t *testing.T) {
	tests := []struct {
		name       string
		upstream   string
		wantKind   string
		wantStatut int
	}{
		{name: "unknown account", upstream: `{"statutConnexion":2}`, wantKind: "unknown_account", wantStatut: 2},
		{name: "wrong password", upstream: `{"statutConnexion":6,"details":"2"}`, wantKind: "invalid_password", wantStatut: 6},
		{name: "locked", upstream: `{"statutConnexion":8}`, wantKind: "account_locked", wantStatut: 8},
		{name: "unmapped code", upstream: `{"statutConnexion":77}`, wantKind: "unknown_error", wantStatut: 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newTestMux(t, loginUpstream(tt.upstream))

			rec := postLogin(t, mux, `{"identifier":"1611830","secret":"x"}`)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}

			var resp models.LoginRejection
			decodeBody(t, rec, &resp)
			if resp.Success {
				t.Error("success = true")
			}
			if resp.Error != tt.wantKind {
				t.Errorf("error kind = %q, want %q", resp.Error, tt.wantKind)
			}
			if resp.StatusCode != tt.wantStatut {
				t.Errorf("statutConnexion = %d, want %d", resp.StatusCode, tt.wantStatut)
			}
			if resp.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestLoginWrongPasswordCarriesAttempts(t *testing.T) {
	mux, _ := newTestMux(t, loginUpstream(`{"statutConnexion":6,"details":"2"}`))

	rec := postLogin(t, mux, `{"identifier":"1611830","secret":"wrong"}`)
	var resp models.LoginRejection
	decodeBody(t, rec, &resp)
	if resp.Details != "2" {
		t.Errorf("details = %q, want 2", resp.Details)
	}
	if !strings.Contains(resp.Message, "2 essai(s)") {
		t.Errorf("message = %q, want remaining attempts", resp.Message)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	mux, _ := newTestMux(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without credentials")
	}))

	tests := []struct {
		name string
		body string
	}{
		{name: "empty identifier", body: `{"identifier":"","secret":"dev"}`},
		{name: "empty secret", body: `{"identifier":"1611830","secret":""}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(t, mux, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			decodeBody(t, rec, &body)
			if body["error"] != "missing_credentials" {
				t.Errorf("error kind = %q, want missing_credentials", body["error"])
			}
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	mux, _ := newTestMux(t, http.NewServeMux())

	rec := postLogin(t, mux, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "invalid_request" {
		t.Errorf("error kind = %q, want invalid_request", body["error"])
	}
}

func TestLoginUpstreamDown(t *testing.T) {
	mux, _ := newDeadUpstreamMux(t)

	rec := postLogin(t, mux, `{"identifier":"1611830","secret":"dev"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "upstream_error" {
		t.Errorf("error kind = %q, want upstream_error", body["error"])
	}
	// The message must stay neutral: no internal detail leaks.
	if strings.Contains(body["message"], "connect") || strings.Contains(body["message"], "refused") {
		t.Errorf("message leaks transport detail: %q", body["message"])
	}
}

func TestRefreshReissuesToken(t *testing.T) {
	mux, codec := newTestMux(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("refresh must not call the upstream")
	}))

	original, err := codec.Issue(1611830, token.DisplayName{FirstName: "Jeremy", LastName: "Martin"}, "upstream-cred")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+original)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}

	claims, err := codec.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify(refreshed) error = %v", err)
	}
	if claims.UpstreamToken != "upstream-cred" {
		t.Errorf("UpstreamToken = %q, want carried over verbatim", claims.UpstreamToken)
	}
	if claims.Particip != 1611830 || claims.FirstName != "Jeremy" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRefreshRejectsMissingAndInvalid(t *testing.T) {
	mux, _ := newTestMux(t, http.NewServeMux())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "missing_token" {
		t.Errorf("error kind = %q, want missing_token", body["error"])
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer expired-or-garbage")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status with bad token = %d, want 401", rec.Code)
	}
	decodeBody(t, rec, &body)
	if body["error"] != "invalid_token" {
		t.Errorf("error kind = %q, want invalid_token", body["error"])
	}
}

func TestLogout(t *testing.T) {
	mux, _ := newTestMux(t, http.NewServeMux())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]bool
	decodeBody(t, rec, &body)
	if !body["success"] {
		t.Error("success = false")
	}
}
