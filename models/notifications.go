// ABOUTME: Notification list DTOs and upstream-to-mobile mapping
// ABOUTME: Computes the unread count when the upstream omits it

package models

// NotificationUpstream is one entry of the upstream notifications list.
type NotificationUpstream struct {
	ID           string `json:"id"`
	Titre        string `json:"titre"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	TypeLibelle  string `json:"typeLibelle"`
	DateCreation string `json:"dateCreation"`
	Lu           bool   `json:"lu"`
	Priorite     *int   `json:"priorite"`
	ActionURL    string `json:"actionUrl"`
}

// NotificationsUpstream is the upstream notifications envelope.
type NotificationsUpstream struct {
	Notifications []NotificationUpstream `json:"notifications"`
	Total         int                    `json:"total"`
	NonLues       *int                   `json:"nonLues"`
}

// Notification is the mobile shape of one notification.
type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	Date      string `json:"date"`
	IsRead    bool   `json:"isRead"`
	Priority  int    `json:"priority"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// NotificationList is the mobile notifications envelope.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unreadCount"`
}

// MapNotifications reshapes the upstream notifications list. Priority
// defaults to 3 (informational); the unread count is recomputed from
// the list when the upstream does not provide it.
func MapNotifications(in NotificationsUpstream) NotificationList {
	notifications := make([]Notification, 0, len(in.Notifications))
	unread := 0
	for _, n := range in.Notifications {
		priority := 3
		if n.Priorite != nil {
			priority = *n.Priorite
		}
		if !n.Lu {
			unread++
		}
		notifications = append(notifications, Notification{
			ID:        n.ID,
			Title:     n.Titre,
			Message:   n.Message,
			Type:      n.Type,
			TypeLabel: n.TypeLibelle,
			Date:      n.DateCreation,
			IsRead:    n.Lu,
			Priority:  priority,
			ActionURL: n.ActionURL,
		})
	}
	total := in.Total
	if total == 0 {
		total = len(notifications)
	}
	unreadCount := unread
	if in.NonLues != nil {
		unreadCount = *in.NonLues
	}
	return NotificationList{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unreadCount,
	}
}
