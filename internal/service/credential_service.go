package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type credentialRepository interface {
	Create(ctx context.Context, c *models.Credential) error
	MarkVerified(ctx context.Context, hash string) (*models.Credential, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Credential, error)
}

// CredentialService issues and verifies hash-addressed student credentials.
type CredentialService struct {
	repo      credentialRepository
	students  studentLookup
	validator *validator.Validate
	nonce     func() string
}

// NewCredentialService constructs a CredentialService.
func NewCredentialService(repo credentialRepository, students studentLookup, validate *validator.Validate) *CredentialService {
	if validate == nil {
		validate = validator.New()
	}
	return &CredentialService{repo: repo, students: students, validator: validate, nonce: uuid.NewString}
}

// Issue stores a credential for a student of collegeID. Without a supplied
// hash the record is addressed by a SHA-256 digest of its fields and a random
// nonce.
func (s *CredentialService) Issue(ctx context.Context, collegeID int64, req dto.IssueCredentialRequest) (*models.Credential, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err, "invalid credential payload")
	}
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		if isNoRows(err) {
			return nil, appErrors.Clone(appErrors.ErrReferential, "student does not exist")
		}
		return nil, storeError(err, "failed to load student")
	}
	if !(models.Actor{Role: models.RoleCollegeAdmin, ProfileID: collegeID}).Permits(models.Owners{CollegeID: student.CollegeID}) {
		return nil, notFound("student not found")
	}
	if req.IssueDate != nil && req.ExpirationDate != nil && req.ExpirationDate.Before(*req.IssueDate) {
		return nil, appErrors.Clone(appErrors.ErrDomainConstraint, "expiration date precedes issue date")
	}

	metadata := types.JSONText(`{}`)
	if len(req.Metadata) > 0 && string(req.Metadata) != "null" {
		if !json.Valid(req.Metadata) {
			return nil, appErrors.Clone(appErrors.ErrDomainConstraint, "metadata must be valid JSON")
		}
		metadata = types.JSONText(req.Metadata)
	}

	hash := strings.ToLower(req.Hash)
	if hash == "" {
		hash = s.digest(req)
	}

	cred := &models.Credential{
		StudentID:      req.StudentID,
		CredentialType: req.CredentialType,
		CredentialHash: hash,
		Issuer:         optional(req.Issuer),
		IssueDate:      req.IssueDate,
		ExpirationDate: req.ExpirationDate,
		TxID:           optional(req.TxID),
		Metadata:       metadata,
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		return nil, storeError(err, "failed to issue credential")
	}
	return cred, nil
}

// Verify marks the credential with hash as verified and returns it, or nil
// when no credential carries that hash.
func (s *CredentialService) Verify(ctx context.Context, hash string) (*models.Credential, error) {
	return lookup(s.repo.MarkVerified(ctx, strings.ToLower(hash)))
}

// ListForStudent returns the student's credentials.
func (s *CredentialService) ListForStudent(ctx context.Context, studentID int64) ([]models.Credential, error) {
	creds, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to list credentials")
	}
	if creds == nil {
		creds = []models.Credential{}
	}
	return creds, nil
}

func (s *CredentialService) digest(req dto.IssueCredentialRequest) string {
	h := sha256.New()
	for _, part := range []string{
		strconv.FormatInt(req.StudentID, 10),
		req.CredentialType,
		req.Issuer,
		formatDate(req.IssueDate),
		formatDate(req.ExpirationDate),
		s.nonce(),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
