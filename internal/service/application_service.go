package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type applicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	ListForStudent(ctx context.Context, studentID int64) ([]models.StudentApplication, error)
	ListForJob(ctx context.Context, jobID int64) ([]models.JobApplicant, error)
	LockForReview(ctx context.Context, tx *sqlx.Tx, applicationID int64) (*models.ApplicationReview, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, applicationID int64, status models.ApplicationStatus, feedback *string) error
}

type jobOwnerLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Job, error)
}

type notificationWriter interface {
	Create(ctx context.Context, exec sqlx.ExtContext, n *models.Notification) error
}

// ApplicationService manages student applications and their review lifecycle.
type ApplicationService struct {
	repo          applicationRepository
	jobs          jobOwnerLookup
	notifications notificationWriter
	tx            txProvider
	cache         *CacheService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(repo applicationRepository, jobs jobOwnerLookup, notifications notificationWriter, tx txProvider, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		repo:          repo,
		jobs:          jobs,
		notifications: notifications,
		tx:            tx,
		cache:         cache,
		validator:     validate,
		logger:        logger,
	}
}

// Create submits a pending application for the student and returns its id.
func (s *ApplicationService) Create(ctx context.Context, studentID int64, req dto.CreateApplicationRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid application payload")
	}
	app := &models.Application{
		StudentID:   studentID,
		JobID:       req.JobID,
		CoverLetter: optional(req.CoverLetter),
		ResumePath:  optional(req.ResumePath),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return 0, storeError(err, "failed to create application")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return app.ID, nil
}

// ListForStudent returns the student's applications, newest first.
func (s *ApplicationService) ListForStudent(ctx context.Context, studentID int64) ([]models.StudentApplication, error) {
	apps, err := s.repo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to list applications")
	}
	if apps == nil {
		apps = []models.StudentApplication{}
	}
	return apps, nil
}

// ListForJob returns the applicants of one of the recruiter's jobs.
func (s *ApplicationService) ListForJob(ctx context.Context, recruiterID, jobID int64) ([]models.JobApplicant, error) {
	job, err := lookup(s.jobs.FindByID(ctx, jobID))
	if err != nil {
		return nil, err
	}
	if job == nil || job.RecruiterID != recruiterID {
		return nil, notFound("job not found")
	}
	apps, err := s.repo.ListForJob(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "failed to list applicants")
	}
	if apps == nil {
		apps = []models.JobApplicant{}
	}
	return apps, nil
}

// UpdateStatus moves an application one step along its lifecycle on behalf of
// the recruiter that owns the job, and notifies the student in the same
// transaction.
func (s *ApplicationService) UpdateStatus(ctx context.Context, recruiterID, applicationID int64, req dto.UpdateApplicationStatusRequest) (err error) {
	if err := s.validator.Struct(req); err != nil {
		return invalidInput(err, "invalid status payload")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Kind(appErrors.ErrConnection, err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	review, err := s.repo.LockForReview(ctx, tx, applicationID)
	if err != nil {
		if isNoRows(err) {
			return notFound("application not found")
		}
		return storeError(err, "failed to load application")
	}
	if review.RecruiterID != recruiterID {
		return notFound("application not found")
	}
	if !review.Status.CanTransitionTo(req.Status) {
		return appErrors.Clone(appErrors.ErrDomainConstraint,
			fmt.Sprintf("application cannot move from %s to %s", review.Status, req.Status))
	}

	if err = s.repo.UpdateStatus(ctx, tx, applicationID, req.Status, optional(req.Feedback)); err != nil {
		return storeError(err, "failed to update application")
	}

	note := &models.Notification{
		UserID:  review.StudentUserID,
		Title:   "Application status updated",
		Message: fmt.Sprintf("Your application for %s is now %s.", review.JobTitle, req.Status),
		Type:    models.NotificationApplication,
	}
	if err = s.notifications.Create(ctx, tx, note); err != nil {
		return storeError(err, "failed to notify student")
	}

	if err = tx.Commit(); err != nil {
		return storeError(err, "failed to commit application update")
	}

	s.logger.Info("application status changed",
		zap.Int64("application_id", applicationID),
		zap.String("from", string(review.Status)),
		zap.String("to", string(req.Status)),
	)
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return nil
}
