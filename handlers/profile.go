// ABOUTME: Profile handlers: read the simplified profile, update contact details
// ABOUTME: Updates are relayed to the upstream with renamed body fields

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// Profile returns the simplified user profile with contract summaries.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Salarie/infosSalarie",
		Token: claims.UpstreamToken,
	})
	if err != nil {
		slog.Error("profile upstream call failed", "error", err)
		writeError(w, "upstream_error", "Impossible de charger le profil.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var infos models.InfosSalarie
	if err := res.Decode(&infos); err != nil {
		slog.Error("profile upstream response unreadable", "error", err)
		writeError(w, "upstream_error", "Impossible de charger le profil.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapProfile(infos))
}

type addressUpdate struct {
	Street     string  `json:"street"`
	Complement *string `json:"complement"`
	PostalCode string  `json:"postalCode"`
	City       string  `json:"city"`
}

// UpdateAddress relays an address change to the upstream.
func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req addressUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}

	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Salarie/modifAdresse",
		Body: map[string]any{
			"newAdresse":     req.Street,
			"newCompAdresse": req.Complement,
			"newLieuDit":     nil,
			"newCodePostal":  req.PostalCode,
			"newVille":       req.City,
		},
	})
}

// UpdateEmail relays an email change to the upstream.
func (h *Handler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}

	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Salarie/modifEmail",
		Body:   map[string]string{"newMail": req.Email},
	})
}

// UpdatePhone relays a mobile phone change to the upstream.
func (h *Handler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}

	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Salarie/modifPhone",
		Body:   map[string]string{"newTelephone": req.Phone},
	})
}
