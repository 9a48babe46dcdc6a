package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type feedbackRepository interface {
	Create(ctx context.Context, fb *models.InterviewFeedback) error
	ListByApplication(ctx context.Context, applicationID int64) ([]models.InterviewFeedback, error)
}

type applicationOwners interface {
	Owners(ctx context.Context, applicationID int64) (*models.Owners, error)
}

// FeedbackService records interviewer evaluations.
type FeedbackService struct {
	repo      feedbackRepository
	owners    applicationOwners
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(repo feedbackRepository, owners applicationOwners, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{repo: repo, owners: owners, validator: validate, logger: logger}
}

// Submit stores one interviewer's feedback on an application and returns its id.
// Ratings must lie in [1, 10]. The interviewer must be the recruiter who posted
// the job.
func (s *FeedbackService) Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid feedback payload")
	}
	owners, err := s.owners.Owners(ctx, req.ApplicationID)
	if err != nil {
		if isNoRows(err) {
			return 0, appErrors.Clone(appErrors.ErrReferential, "application does not exist")
		}
		return 0, storeError(err, "failed to load application")
	}
	if !(models.Actor{Role: models.RoleRecruiter, ProfileID: req.InterviewerID}).Permits(*owners) {
		return 0, notFound("application not found")
	}
	fb := &models.InterviewFeedback{
		ApplicationID:       req.ApplicationID,
		InterviewerID:       req.InterviewerID,
		TechnicalSkills:     req.TechnicalSkills,
		Communication:       req.Communication,
		ProblemSolving:      req.ProblemSolving,
		Attitude:            req.Attitude,
		OverallRating:       req.OverallRating,
		Strengths:           optional(req.Strengths),
		AreasForImprovement: optional(req.AreasForImprovement),
		Recommendation:      req.Recommendation,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return 0, storeError(err, "failed to submit feedback")
	}
	s.logger.Debug("feedback submitted", zap.Int64("application_id", fb.ApplicationID), zap.Int64("interviewer_id", fb.InterviewerID))
	return fb.ID, nil
}

// ListForApplication returns all feedback recorded for an application the
// actor owns.
func (s *FeedbackService) ListForApplication(ctx context.Context, actor models.Actor, applicationID int64) ([]models.InterviewFeedback, error) {
	owners, err := s.owners.Owners(ctx, applicationID)
	if err != nil && !isNoRows(err) {
		return nil, storeError(err, "failed to load application")
	}
	if owners == nil || !actor.Permits(*owners) {
		return nil, notFound("application not found")
	}
	items, err := s.repo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, storeError(err, "failed to list feedback")
	}
	if items == nil {
		items = []models.InterviewFeedback{}
	}
	return items, nil
}
