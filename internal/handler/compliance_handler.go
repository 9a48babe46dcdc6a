package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
	"github.com/noah-isme/placement-api/pkg/response"
)

// maxComplianceBody bounds the snapshot payload; the score set is small.
const maxComplianceBody = 64 << 10

type complianceService interface {
	Save(ctx context.Context, collegeID int64, req dto.SaveComplianceRequest) (*models.ComplianceSnapshot, error)
	List(ctx context.Context, collegeID int64) ([]models.ComplianceSnapshot, error)
}

// ComplianceHandler exposes NEP compliance snapshots of the caller's college.
type ComplianceHandler struct {
	service  complianceService
	profiles profileResolver
}

// NewComplianceHandler constructs the handler.
func NewComplianceHandler(svc complianceService, profiles profileResolver) *ComplianceHandler {
	return &ComplianceHandler{service: svc, profiles: profiles}
}

// Save godoc
// @Summary Record compliance snapshot
// @Description Unknown score names are rejected; omitted scores count as zero
// @Tags Compliance
// @Accept json
// @Produce json
// @Param payload body dto.SaveComplianceRequest true "Scores"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /compliance [post]
func (h *ComplianceHandler) Save(c *gin.Context) {
	college, ok := currentCollege(c, h.profiles)
	if !ok {
		return
	}
	var req dto.SaveComplianceRequest
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxComplianceBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid compliance payload"))
		return
	}

	snap, err := h.service.Save(c.Request.Context(), college.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, snap)
}

// List godoc
// @Summary Compliance history
// @Tags Compliance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /compliance [get]
func (h *ComplianceHandler) List(c *gin.Context) {
	college, ok := currentCollege(c, h.profiles)
	if !ok {
		return
	}
	snaps, err := h.service.List(c.Request.Context(), college.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snaps)
}
