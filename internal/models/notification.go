package models

import "time"

// NotificationType categorises user notifications.
type NotificationType string

const (
	NotificationInfo        NotificationType = "info"
	NotificationWarning     NotificationType = "warning"
	NotificationSuccess     NotificationType = "success"
	NotificationError       NotificationType = "error"
	NotificationJob         NotificationType = "job"
	NotificationApplication NotificationType = "application"
)

// NotificationListLimit caps how many notifications a listing returns.
const NotificationListLimit = 20

// Valid reports whether the type belongs to the closed set.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationSuccess, NotificationError, NotificationJob, NotificationApplication:
		return true
	}
	return false
}

// Notification is a message addressed to one user.
type Notification struct {
	ID        int64            `db:"notification_id" json:"notification_id"`
	UserID    int64            `db:"user_id" json:"user_id"`
	Title     string           `db:"title" json:"title"`
	Message   string           `db:"message" json:"message"`
	Type      NotificationType `db:"notification_type" json:"notification_type"`
	Read      bool             `db:"is_read" json:"is_read"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
