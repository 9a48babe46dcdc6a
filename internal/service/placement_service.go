package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type placementRepository interface {
	Create(ctx context.Context, p *models.Placement) error
	Lock(ctx context.Context, tx *sqlx.Tx, placementID int64) (*models.PlacementLock, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, placementID int64, status models.PlacementStatus) error
	ListReportForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error)
}

type studentLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

// PlacementService records offers and tracks them to joining.
type PlacementService struct {
	repo      placementRepository
	students  studentLookup
	jobs      jobOwnerLookup
	tx        txProvider
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPlacementService constructs a PlacementService.
func NewPlacementService(repo placementRepository, students studentLookup, jobs jobOwnerLookup, tx txProvider, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *PlacementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlacementService{repo: repo, students: students, jobs: jobs, tx: tx, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// Record stores an offer for a student. The placement inherits the student's
// college. Recruiters record offers for their own jobs, college admins for
// their own students.
func (s *PlacementService) Record(ctx context.Context, actor models.Actor, req dto.RecordPlacementRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid placement payload")
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		if isNoRows(err) {
			return 0, appErrors.Clone(appErrors.ErrReferential, "student does not exist")
		}
		return 0, storeError(err, "failed to load student")
	}
	job, err := s.jobs.FindByID(ctx, req.JobID)
	if err != nil {
		if isNoRows(err) {
			return 0, appErrors.Clone(appErrors.ErrReferential, "job does not exist")
		}
		return 0, storeError(err, "failed to load job")
	}
	if !actor.Permits(models.Owners{RecruiterID: job.RecruiterID, CollegeID: student.CollegeID}) {
		return 0, notFound("student or job not found")
	}

	placement := &models.Placement{
		StudentID:      req.StudentID,
		JobID:          req.JobID,
		CollegeID:      student.CollegeID,
		PlacementDate:  req.PlacementDate,
		PackageOffered: req.PackageOffered,
		JoiningDate:    req.JoiningDate,
	}
	if err := s.repo.Create(ctx, placement); err != nil {
		return 0, storeError(err, "failed to record placement")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return placement.ID, nil
}

// UpdateStatus moves a placement one step along offered, accepted, joined or
// offered, rejected. Placements the actor does not own are reported as missing.
func (s *PlacementService) UpdateStatus(ctx context.Context, actor models.Actor, placementID int64, req dto.UpdatePlacementStatusRequest) (err error) {
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

	lock, err := s.repo.Lock(ctx, tx, placementID)
	if err != nil {
		if isNoRows(err) {
			return notFound("placement not found")
		}
		return storeError(err, "failed to load placement")
	}
	if !actor.Permits(lock.Owners) {
		return notFound("placement not found")
	}
	current := lock.Status
	if !current.CanTransitionTo(req.Status) {
		return appErrors.Clone(appErrors.ErrDomainConstraint,
			fmt.Sprintf("placement cannot move from %s to %s", current, req.Status))
	}
	if err = s.repo.UpdateStatus(ctx, tx, placementID, req.Status); err != nil {
		return storeError(err, "failed to update placement")
	}
	if err = tx.Commit(); err != nil {
		return storeError(err, "failed to commit placement update")
	}
	return nil
}

// ListForCollege returns the report rows of a college's placements.
func (s *PlacementService) ListForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error) {
	start := time.Now()
	rows, err := s.repo.ListReportForCollege(ctx, collegeID)
	s.metrics.ObserveDBQuery("placement_report", time.Since(start))
	if err != nil {
		return nil, storeError(err, "failed to list placements")
	}
	if rows == nil {
		rows = []models.PlacementReportRow{}
	}
	return rows, nil
}
