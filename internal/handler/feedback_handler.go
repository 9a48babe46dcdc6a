package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/pkg/response"
)

type feedbackService interface {
	Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (int64, error)
	ListForApplication(ctx context.Context, actor models.Actor, applicationID int64) ([]models.InterviewFeedback, error)
}

// FeedbackHandler exposes interview feedback.
type FeedbackHandler struct {
	service  feedbackService
	profiles profileResolver
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(svc feedbackService, profiles profileResolver) *FeedbackHandler {
	return &FeedbackHandler{service: svc, profiles: profiles}
}

// Submit godoc
// @Summary Submit interview feedback
// @Description The calling recruiter is recorded as the interviewer
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body dto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /applications/{id}/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	recruiter, ok := currentRecruiter(c, h.profiles)
	if !ok {
		return
	}
	var req dto.SubmitFeedbackRequest
	if !bindJSON(c, &req, "invalid feedback payload") {
		return
	}
	req.ApplicationID = applicationID
	req.InterviewerID = recruiter.ID

	id, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// List godoc
// @Summary Feedback for application
// @Tags Feedback
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id}/feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c, h.profiles)
	if !ok {
		return
	}
	items, err := h.service.ListForApplication(c.Request.Context(), actor, applicationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}
