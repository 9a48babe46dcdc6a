package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
	"github.com/noah-isme/placement-api/pkg/response"
)

type jobService interface {
	Create(ctx context.Context, recruiterID int64, req dto.CreateJobRequest) (int64, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error)
	Deactivate(ctx context.Context, recruiterID, jobID int64) error
}

var jobFilterKeys = map[string]struct{}{"job_type": {}, "location": {}, "skills": {}}

// JobHandler exposes job postings.
type JobHandler struct {
	service  jobService
	profiles profileResolver
}

// NewJobHandler constructs the handler.
func NewJobHandler(svc jobService, profiles profileResolver) *JobHandler {
	return &JobHandler{service: svc, profiles: profiles}
}

// List godoc
// @Summary List active jobs
// @Tags Jobs
// @Produce json
// @Param job_type query string false "full_time, internship or contract"
// @Param location query string false "Location substring"
// @Param skills query string false "Required skills substring"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	for key := range c.Request.URL.Query() {
		if _, ok := jobFilterKeys[key]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown filter "+key))
			return
		}
	}
	var filter models.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job filter"))
		return
	}

	jobs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs, map[string]interface{}{"count": len(jobs)})
}

// Get godoc
// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if job == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "job not found"))
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Create godoc
// @Summary Post job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param payload body dto.CreateJobRequest true "Job"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	recruiter, ok := currentRecruiter(c, h.profiles)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !bindJSON(c, &req, "invalid job payload") {
		return
	}
	id, err := h.service.Create(c.Request.Context(), recruiter.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// Deactivate godoc
// @Summary Close job
// @Tags Jobs
// @Param id path int true "Job ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [delete]
func (h *JobHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	recruiter, ok := currentRecruiter(c, h.profiles)
	if !ok {
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), recruiter.ID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
