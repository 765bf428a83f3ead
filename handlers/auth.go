// ABOUTME: Login, refresh and logout handlers
// ABOUTME: Exchanges upstream credentials for BFF session tokens

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/token"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// Login authenticates against the upstream and mints a BFF session token.
//
// The upstream signals the outcome in-body via statutConnexion even on
// HTTP 200. Only status 1 is a success; every other code maps to a
// stable error kind returned with HTTP 401. The upstream access token is
// embedded verbatim in the session token and never returned to the
// client on its own.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	if req.Identifier == "" || req.Secret == "" {
		writeError(w, "missing_credentials", "Identifiant et mot de passe sont requis.", http.StatusBadRequest)
		return
	}

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Auth/connexion",
		Body:   map[string]string{"identifiant": req.Identifier, "motDePasse": req.Secret},
	})
	if err != nil {
		slog.Error("login upstream call failed", "error", err)
		writeError(w, "upstream_error", "Service temporairement indisponible. Reessayez plus tard.", http.StatusBadGateway)
		return
	}

	var login models.UpstreamLogin
	if err := res.Decode(&login); err != nil {
		slog.Error("login upstream response unreadable", "status", res.Status, "error", err)
		writeError(w, "upstream_error", "Service temporairement indisponible. Reessayez plus tard.", http.StatusBadGateway)
		return
	}

	status := models.LoginStatus(login.StatutConnexion)
	if status != models.StatusSuccess {
		kind, message := status.Classify(login.Details)
		slog.Info("login rejected", "statutConnexion", login.StatutConnexion, "kind", kind)
		writeJSON(w, http.StatusUnauthorized, models.LoginRejection{
			Success:    false,
			StatusCode: login.StatutConnexion,
			Error:      kind,
			Message:    message,
			Details:    login.Details,
		})
		return
	}

	name, _ := token.DecodeDisplayName(login.AccessToken)
	particip, _ := strconv.Atoi(req.Identifier)

	sessionToken, err := h.codec.Issue(particip, name, login.AccessToken)
	if err != nil {
		slog.Error("session token signing failed", "error", err)
		writeError(w, "internal_error", "Une erreur interne est survenue.", http.StatusInternalServerError)
		return
	}

	expiresIn := login.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 3600
	}

	slog.Info("login succeeded", "particip", particip)
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success:   true,
		Token:     sessionToken,
		ExpiresIn: expiresIn,
	})
}

// Refresh re-issues a session token from a still-valid one. The embedded
// upstream credential is carried over unchanged; no upstream call is made.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	raw := bearerToken(r)
	if raw == "" {
		writeError(w, "missing_token", "Token BFF manquant.", http.StatusUnauthorized)
		return
	}

	claims, err := h.codec.Verify(raw)
	if err != nil {
		writeError(w, "invalid_token", "Token BFF invalide ou expire.", http.StatusUnauthorized)
		return
	}

	name := token.DisplayName{FirstName: claims.FirstName, LastName: claims.LastName}
	refreshed, err := h.codec.Issue(claims.Particip, name, claims.UpstreamToken)
	if err != nil {
		slog.Error("session token signing failed", "error", err)
		writeError(w, "internal_error", "Une erreur interne est survenue.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success:   true,
		Token:     refreshed,
		ExpiresIn: int(token.TTL.Seconds()),
	})
}

// Logout acknowledges the client-side token discard. Sessions are
// stateless so there is nothing to invalidate server-side; expiry is the
// sole invalidation mechanism.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
