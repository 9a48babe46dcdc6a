package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/middleware"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
	"github.com/noah-isme/placement-api/pkg/response"
)

// profileResolver maps the authenticated user onto their role profile.
type profileResolver interface {
	StudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	CollegeByUserID(ctx context.Context, userID int64) (*models.College, error)
	RecruiterByUserID(ctx context.Context, userID int64) (*models.Recruiter, error)
}

var errProfileRequired = appErrors.New("PROFILE_REQUIRED", http.StatusForbidden, "profile required")

func claimsFromContext(c *gin.Context) (*models.JWTClaims, bool) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return claims, true
}

func bindJSON(c *gin.Context, dest interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, msg))
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid "+name))
		return 0, false
	}
	return id, true
}

func currentStudent(c *gin.Context, profiles profileResolver) (*models.Student, bool) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return nil, false
	}
	return resolveProfile[models.Student](c, "student profile required")(profiles.StudentByUserID(c.Request.Context(), claims.UserID))
}

func currentCollege(c *gin.Context, profiles profileResolver) (*models.College, bool) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return nil, false
	}
	return resolveProfile[models.College](c, "college profile required")(profiles.CollegeByUserID(c.Request.Context(), claims.UserID))
}

func currentRecruiter(c *gin.Context, profiles profileResolver) (*models.Recruiter, bool) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return nil, false
	}
	return resolveProfile[models.Recruiter](c, "recruiter profile required")(profiles.RecruiterByUserID(c.Request.Context(), claims.UserID))
}

// currentActor resolves the recruiter or college profile the caller acts through.
func currentActor(c *gin.Context, profiles profileResolver) (models.Actor, bool) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return models.Actor{}, false
	}
	switch claims.Role {
	case models.RoleRecruiter:
		recruiter, ok := currentRecruiter(c, profiles)
		if !ok {
			return models.Actor{}, false
		}
		return models.Actor{Role: claims.Role, ProfileID: recruiter.ID}, true
	case models.RoleCollegeAdmin:
		college, ok := currentCollege(c, profiles)
		if !ok {
			return models.Actor{}, false
		}
		return models.Actor{Role: claims.Role, ProfileID: college.ID}, true
	}
	response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "recruiter or college role required"))
	return models.Actor{}, false
}

// resolveProfile writes the error response for a failed or empty lookup.
func resolveProfile[T any](c *gin.Context, msg string) func(*T, error) (*T, bool) {
	return func(v *T, err error) (*T, bool) {
		if err != nil {
			response.Error(c, err)
			return nil, false
		}
		if v == nil {
			response.Error(c, appErrors.Clone(errProfileRequired, msg))
			return nil, false
		}
		return v, true
	}
}
