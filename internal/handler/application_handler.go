package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/pkg/response"
)

type applicationService interface {
	Create(ctx context.Context, studentID int64, req dto.CreateApplicationRequest) (int64, error)
	ListForStudent(ctx context.Context, studentID int64) ([]models.StudentApplication, error)
	ListForJob(ctx context.Context, recruiterID, jobID int64) ([]models.JobApplicant, error)
	UpdateStatus(ctx context.Context, recruiterID, applicationID int64, req dto.UpdateApplicationStatusRequest) error
}

// ApplicationHandler exposes job applications.
type ApplicationHandler struct {
	service  applicationService
	profiles profileResolver
}

// NewApplicationHandler constructs the handler.
func NewApplicationHandler(svc applicationService, profiles profileResolver) *ApplicationHandler {
	return &ApplicationHandler{service: svc, profiles: profiles}
}

// Create godoc
// @Summary Apply to job
// @Tags Applications
// @Accept json
// @Produce json
// @Param payload body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	student, ok := currentStudent(c, h.profiles)
	if !ok {
		return
	}
	var req dto.CreateApplicationRequest
	if !bindJSON(c, &req, "invalid application payload") {
		return
	}
	id, err := h.service.Create(c.Request.Context(), student.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// ListMine godoc
// @Summary Own applications
// @Tags Applications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	student, ok := currentStudent(c, h.profiles)
	if !ok {
		return
	}
	items, err := h.service.ListForStudent(c.Request.Context(), student.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListForJob godoc
// @Summary Applicants of a job
// @Tags Applications
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		return
	}
	recruiter, ok := currentRecruiter(c, h.profiles)
	if !ok {
		return
	}
	items, err := h.service.ListForJob(c.Request.Context(), recruiter.ID, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// UpdateStatus godoc
// @Summary Review application
// @Description Moves the application along its lifecycle and notifies the student
// @Tags Applications
// @Accept json
// @Param id path int true "Application ID"
// @Param payload body dto.UpdateApplicationStatusRequest true "Status"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	recruiter, ok := currentRecruiter(c, h.profiles)
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(c, &req, "invalid status payload") {
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), recruiter.ID, id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
