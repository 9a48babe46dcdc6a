package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
)

type notificationRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, n *models.Notification) error
	List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) (bool, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Reaches(ctx context.Context, actor models.Actor, userID int64) (bool, error)
}

// NotificationService manages per-user notifications.
type NotificationService struct {
	repo      notificationRepository
	validator *validator.Validate
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(repo notificationRepository, validate *validator.Validate) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	return &NotificationService{repo: repo, validator: validate}
}

// Create addresses a notification to a user and returns its id. An empty type
// is stored as info.
func (s *NotificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid notification payload")
	}
	n := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}
	if n.Type == "" {
		n.Type = models.NotificationInfo
	}
	if err := s.repo.Create(ctx, nil, n); err != nil {
		return 0, storeError(err, "failed to create notification")
	}
	return n.ID, nil
}

// Send creates a notification on behalf of a staff actor. Recipients outside
// the actor's students and applicants are reported as missing.
func (s *NotificationService) Send(ctx context.Context, actor models.Actor, req dto.CreateNotificationRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid notification payload")
	}
	ok, err := s.repo.Reaches(ctx, actor, req.UserID)
	if err != nil {
		return 0, storeError(err, "failed to check recipient")
	}
	if !ok {
		return 0, notFound("recipient not found")
	}
	return s.Create(ctx, req)
}

// List returns the user's most recent notifications.
func (s *NotificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	items, err := s.repo.List(ctx, userID, unreadOnly)
	if err != nil {
		return nil, storeError(err, "failed to list notifications")
	}
	if items == nil {
		items = []models.Notification{}
	}
	return items, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	ok, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return storeError(err, "failed to mark notification read")
	}
	if !ok {
		return notFound("notification not found")
	}
	return nil
}

// MarkAllRead marks every unread notification of the user and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, storeError(err, "failed to mark notifications read")
	}
	return n, nil
}
