package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/pkg/response"
)

type authService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (int64, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register godoc
// @Summary Register account
// @Description Create a platform account for one of the four roles
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.CreateUserRequest true "Account"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req, "invalid registration payload") {
		return
	}

	id, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate user by username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req, "invalid login payload") {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Me godoc
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, models.UserInfo{ID: claims.UserID, Username: claims.Username, Role: claims.Role})
}

// DeleteMe godoc
// @Summary Delete own account
// @Description Removes the account and, by cascade, every record that depends on it
// @Tags Authentication
// @Success 204
// @Router /auth/me [delete]
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
