// ABOUTME: Notification handlers: list with unread count, read-state relays

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// Notifications returns the client's notifications with the unread count.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Notifications/list",
		Token: claims.UpstreamToken,
	})
	if err != nil {
		slog.Error("notifications upstream call failed", "error", err)
		writeError(w, "upstream_error", "Impossible de charger les notifications.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var notifications models.NotificationsUpstream
	if err := res.Decode(&notifications); err != nil {
		slog.Error("notifications upstream response unreadable", "error", err)
		writeError(w, "upstream_error", "Impossible de charger les notifications.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapNotifications(notifications))
}

// MarkNotificationRead relays the read flag change for one notification.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Notifications/" + r.PathValue("id") + "/mark-read",
	})
}

// MarkAllNotificationsRead relays the bulk read flag change.
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Notifications/mark-all-read",
	})
}
