package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
	"github.com/noah-isme/placement-api/pkg/response"
)

type notificationService interface {
	Send(ctx context.Context, actor models.Actor, req dto.CreateNotificationRequest) (int64, error)
	List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

// NotificationHandler exposes the caller's notifications.
type NotificationHandler struct {
	service  notificationService
	profiles profileResolver
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(svc notificationService, profiles profileResolver) *NotificationHandler {
	return &NotificationHandler{service: svc, profiles: profiles}
}

// Create godoc
// @Summary Send notification
// @Description Recipients are limited to the caller's students or applicants
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c, h.profiles)
	if !ok {
		return
	}
	var req dto.CreateNotificationRequest
	if !bindJSON(c, &req, "invalid notification payload") {
		return
	}
	id, err := h.service.Send(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// List godoc
// @Summary Recent notifications
// @Tags Notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	unread, err := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unread must be a boolean"))
		return
	}
	items, err := h.service.List(c.Request.Context(), claims.UserID, unread)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// MarkRead godoc
// @Summary Mark notification read
// @Tags Notifications
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), claims.UserID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	n, err := h.service.MarkAllRead(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": n})
}
