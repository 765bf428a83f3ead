// ABOUTME: Document handlers: filtered list, mark-read and signature relays

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// Documents returns the client's documents, optionally filtered with
// ?type=releve|fiscal|contrat|notice.
func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Documents/list",
		Token: claims.UpstreamToken,
		Query: queryValue(r, "type"),
	})
	if err != nil {
		slog.Error("documents upstream call failed", "error", err)
		writeError(w, "upstream_error", "Impossible de charger les documents.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var documents models.DocumentsUpstream
	if err := res.Decode(&documents); err != nil {
		slog.Error("documents upstream response unreadable", "error", err)
		writeError(w, "upstream_error", "Impossible de charger les documents.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapDocuments(documents))
}

// MarkDocumentRead relays the read flag change for one document.
func (h *Handler) MarkDocumentRead(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Documents/" + r.PathValue("id") + "/mark-read",
	})
}

// SignDocument relays the signature request for one document.
func (h *Handler) SignDocument(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Documents/" + r.PathValue("id") + "/sign",
	})
}
