// ABOUTME: HTTP handlers for the mobile BFF endpoints
// ABOUTME: Shared response helpers plus the health check

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/config"
	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/token"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

const version = "1.0.0"

type Handler struct {
	cfg   *config.Config
	relay *upstream.Client
	codec *token.Codec
}

func NewHandler(cfg *config.Config, relay *upstream.Client, codec *token.Codec) *Handler {
	return &Handler{
		cfg:   cfg,
		relay: relay,
		codec: codec,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"service":  "retraite-mobile-bff",
		"version":  version,
		"upstream": h.cfg.UpstreamBaseURL,
	})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, kind, message string, code int) {
	writeJSON(w, code, models.ErrorResponse{Error: kind, Message: message})
}

// forward replays an upstream response to the mobile client verbatim:
// same status, same body, same content type.
func forward(w http.ResponseWriter, res upstream.Result) {
	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(res.Status)
	w.Write(res.Data)
}

// relayForward performs a single upstream call and forwards the response
// as-is. It is the shape of every passthrough endpoint: the upstream
// response body is not reshaped, only the auth boundary changes.
func (h *Handler) relayForward(w http.ResponseWriter, r *http.Request, req upstream.Request) {
	claims := middleware.GetClaims(r)
	req.Token = claims.UpstreamToken

	res, err := h.relay.Do(r.Context(), req)
	if err != nil {
		writeError(w, "upstream_error", "Service temporairement indisponible. Reessayez plus tard.", http.StatusBadGateway)
		return
	}
	forward(w, res)
}
