// ABOUTME: Dashboard handler: aggregated synthese for the mobile home screen

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// Synthese returns the aggregated savings view: total, global allocation
// with categories, and personalized alerts.
func (h *Handler) Synthese(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Retraite/getSynthese",
		Token: claims.UpstreamToken,
	})
	if err != nil {
		slog.Error("synthese upstream call failed", "error", err)
		writeError(w, "upstream_error", "Impossible de charger la synthese.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var synthese models.SyntheseUpstream
	if err := res.Decode(&synthese); err != nil {
		slog.Error("synthese upstream response unreadable", "error", err)
		writeError(w, "upstream_error", "Impossible de charger la synthese.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapSynthese(synthese))
}
