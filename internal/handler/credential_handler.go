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

type credentialService interface {
	Issue(ctx context.Context, collegeID int64, req dto.IssueCredentialRequest) (*models.Credential, error)
	Verify(ctx context.Context, hash string) (*models.Credential, error)
	ListForStudent(ctx context.Context, studentID int64) ([]models.Credential, error)
}

// CredentialHandler exposes hash-addressed student credentials.
type CredentialHandler struct {
	service  credentialService
	profiles profileResolver
}

// NewCredentialHandler constructs the handler.
func NewCredentialHandler(svc credentialService, profiles profileResolver) *CredentialHandler {
	return &CredentialHandler{service: svc, profiles: profiles}
}

// Issue godoc
// @Summary Issue credential
// @Description Issues a credential for a student of the caller's college
// @Tags Credentials
// @Accept json
// @Produce json
// @Param payload body dto.IssueCredentialRequest true "Credential"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /credentials [post]
func (h *CredentialHandler) Issue(c *gin.Context) {
	college, ok := currentCollege(c, h.profiles)
	if !ok {
		return
	}
	var req dto.IssueCredentialRequest
	if !bindJSON(c, &req, "invalid credential payload") {
		return
	}
	cred, err := h.service.Issue(c.Request.Context(), college.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, cred)
}

// Verify godoc
// @Summary Verify credential
// @Description Marks the credential carrying hash as verified
// @Tags Credentials
// @Produce json
// @Param hash path string true "Credential hash"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /credentials/{hash}/verify [post]
func (h *CredentialHandler) Verify(c *gin.Context) {
	cred, err := h.service.Verify(c.Request.Context(), c.Param("hash"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if cred == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "credential not found"))
		return
	}
	response.JSON(c, http.StatusOK, cred)
}

// ListMine godoc
// @Summary Own credentials
// @Tags Credentials
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /credentials [get]
func (h *CredentialHandler) ListMine(c *gin.Context) {
	student, ok := currentStudent(c, h.profiles)
	if !ok {
		return
	}
	h.list(c, student.ID)
}

// ListForStudent godoc
// @Summary Student credentials
// @Tags Credentials
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/credentials [get]
func (h *CredentialHandler) ListForStudent(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.list(c, studentID)
}

func (h *CredentialHandler) list(c *gin.Context, studentID int64) {
	creds, err := h.service.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creds)
}
