package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/pkg/response"
)

type skillService interface {
	Add(ctx context.Context, studentID int64, req dto.AddSkillRequest) (*models.StudentSkill, error)
	List(ctx context.Context, studentID int64) ([]models.StudentSkill, error)
}

// SkillHandler exposes student skills.
type SkillHandler struct {
	service  skillService
	profiles profileResolver
}

// NewSkillHandler constructs the handler.
func NewSkillHandler(svc skillService, profiles profileResolver) *SkillHandler {
	return &SkillHandler{service: svc, profiles: profiles}
}

// Add godoc
// @Summary Declare skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param payload body dto.AddSkillRequest true "Skill"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /skills [post]
func (h *SkillHandler) Add(c *gin.Context) {
	student, ok := currentStudent(c, h.profiles)
	if !ok {
		return
	}
	var req dto.AddSkillRequest
	if !bindJSON(c, &req, "invalid skill payload") {
		return
	}
	skill, err := h.service.Add(c.Request.Context(), student.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, skill)
}

// List godoc
// @Summary Own skills
// @Tags Skills
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	student, ok := currentStudent(c, h.profiles)
	if !ok {
		return
	}
	skills, err := h.service.List(c.Request.Context(), student.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, skills)
}
