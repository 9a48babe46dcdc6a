package dto

import "github.com/noah-isme/placement-api/internal/models"

// CreateNotificationRequest addresses a message to a user. An empty type is
// stored as info.
type CreateNotificationRequest struct {
	UserID  int64                   `json:"user_id" validate:"required,gt=0"`
	Title   string                  `json:"title" validate:"required,max=256"`
	Message string                  `json:"message" validate:"required,max=4096"`
	Type    models.NotificationType `json:"notification_type" validate:"omitempty,oneof=info warning success error job application"`
}
