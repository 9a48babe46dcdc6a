package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
)

type complianceRepository interface {
	Create(ctx context.Context, snap *models.ComplianceSnapshot) error
	ListByCollege(ctx context.Context, collegeID int64) ([]models.ComplianceSnapshot, error)
}

// ComplianceService records NEP compliance snapshots for colleges.
type ComplianceService struct {
	repo      complianceRepository
	validator *validator.Validate
}

// NewComplianceService constructs a ComplianceService.
func NewComplianceService(repo complianceRepository, validate *validator.Validate) *ComplianceService {
	if validate == nil {
		validate = validator.New()
	}
	return &ComplianceService{repo: repo, validator: validate}
}

// Save appends a snapshot whose overall score is the mean of all six
// sub-scores, counting omitted ones as zero.
func (s *ComplianceService) Save(ctx context.Context, collegeID int64, req dto.SaveComplianceRequest) (*models.ComplianceSnapshot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err, "invalid compliance scores")
	}
	snap := &models.ComplianceSnapshot{
		CollegeID:        collegeID,
		Year:             req.Year,
		ComplianceScores: req.Scores,
		OverallScore:     req.Scores.Overall(),
	}
	if err := s.repo.Create(ctx, snap); err != nil {
		return nil, storeError(err, "failed to save compliance snapshot")
	}
	return snap, nil
}

// List returns the college's snapshots, newest year first.
func (s *ComplianceService) List(ctx context.Context, collegeID int64) ([]models.ComplianceSnapshot, error) {
	snaps, err := s.repo.ListByCollege(ctx, collegeID)
	if err != nil {
		return nil, storeError(err, "failed to list compliance snapshots")
	}
	if snaps == nil {
		snaps = []models.ComplianceSnapshot{}
	}
	return snaps, nil
}
