package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/internal/service"
	"github.com/noah-isme/placement-api/pkg/response"
)

type placementService interface {
	Record(ctx context.Context, actor models.Actor, req dto.RecordPlacementRequest) (int64, error)
	UpdateStatus(ctx context.Context, actor models.Actor, placementID int64, req dto.UpdatePlacementStatusRequest) error
}

type reportService interface {
	PlacementReport(ctx context.Context, collegeID int64, format models.ReportFormat) (*service.ExportResult, error)
}

// PlacementHandler exposes placement records and reports.
type PlacementHandler struct {
	service  placementService
	reports  reportService
	profiles profileResolver
}

// NewPlacementHandler constructs the handler.
func NewPlacementHandler(svc placementService, reports reportService, profiles profileResolver) *PlacementHandler {
	return &PlacementHandler{service: svc, reports: reports, profiles: profiles}
}

// Record godoc
// @Summary Record placement
// @Description Recruiters record offers for their jobs, college admins for their students
// @Tags Placements
// @Accept json
// @Produce json
// @Param payload body dto.RecordPlacementRequest true "Placement"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /placements [post]
func (h *PlacementHandler) Record(c *gin.Context) {
	actor, ok := currentActor(c, h.profiles)
	if !ok {
		return
	}
	var req dto.RecordPlacementRequest
	if !bindJSON(c, &req, "invalid placement payload") {
		return
	}
	id, err := h.service.Record(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// UpdateStatus godoc
// @Summary Update placement status
// @Tags Placements
// @Accept json
// @Param id path int true "Placement ID"
// @Param payload body dto.UpdatePlacementStatusRequest true "Status"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /placements/{id}/status [patch]
func (h *PlacementHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c, h.profiles)
	if !ok {
		return
	}
	var req dto.UpdatePlacementStatusRequest
	if !bindJSON(c, &req, "invalid status payload") {
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), actor, id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Report godoc
// @Summary Placement report
// @Description Downloads the caller's college placements as csv, pdf or xlsx
// @Tags Placements
// @Produce octet-stream
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /placements/report [get]
func (h *PlacementHandler) Report(c *gin.Context) {
	college, ok := currentCollege(c, h.profiles)
	if !ok {
		return
	}
	format := models.ReportFormat(strings.ToLower(c.DefaultQuery("format", string(models.ReportFormatCSV))))

	res, err := h.reports.PlacementReport(c.Request.Context(), college.ID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, res.ContentType, res.Data)
}
