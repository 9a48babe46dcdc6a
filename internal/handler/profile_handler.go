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

type profileService interface {
	profileResolver
	CreateStudent(ctx context.Context, userID int64, req dto.CreateStudentRequest) (int64, error)
	CreateCollege(ctx context.Context, userID int64, req dto.CreateCollegeRequest) (int64, error)
	CreateRecruiter(ctx context.Context, userID int64, req dto.CreateRecruiterRequest) (int64, error)
}

// ProfileHandler manages the role profile of the current user.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Create godoc
// @Summary Create own profile
// @Description Creates the student, college or recruiter profile matching the caller's role
// @Tags Profiles
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /profiles/me [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		id  int64
		err error
	)
	switch claims.Role {
	case models.RoleStudent:
		var req dto.CreateStudentRequest
		if !bindJSON(c, &req, "invalid student profile") {
			return
		}
		id, err = h.service.CreateStudent(ctx, claims.UserID, req)
	case models.RoleCollegeAdmin:
		var req dto.CreateCollegeRequest
		if !bindJSON(c, &req, "invalid college profile") {
			return
		}
		id, err = h.service.CreateCollege(ctx, claims.UserID, req)
	case models.RoleRecruiter:
		var req dto.CreateRecruiterRequest
		if !bindJSON(c, &req, "invalid recruiter profile") {
			return
		}
		id, err = h.service.CreateRecruiter(ctx, claims.UserID, req)
	default:
		response.Error(c, appErrors.Clone(errProfileRequired, "observers have no profile"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// Me godoc
// @Summary Own profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}

	var profile interface{}
	switch claims.Role {
	case models.RoleStudent:
		p, found := currentStudent(c, h.service)
		if !found {
			return
		}
		profile = p
	case models.RoleCollegeAdmin:
		p, found := currentCollege(c, h.service)
		if !found {
			return
		}
		profile = p
	case models.RoleRecruiter:
		p, found := currentRecruiter(c, h.service)
		if !found {
			return
		}
		profile = p
	default:
		response.Error(c, appErrors.Clone(errProfileRequired, "observers have no profile"))
		return
	}
	response.JSON(c, http.StatusOK, profile)
}
