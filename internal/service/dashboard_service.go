package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type dashboardRepository interface {
	ApplicationStats(ctx context.Context, studentID int64) (*models.ApplicationStats, error)
	JobStats(ctx context.Context, recruiterID int64) (*models.JobStats, error)
	StudentStats(ctx context.Context, collegeID int64) (*models.StudentStats, error)
	PlacementStats(ctx context.Context, collegeID int64) (*models.PlacementStats, error)
}

type profileLookup interface {
	StudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	CollegeByUserID(ctx context.Context, userID int64) (*models.College, error)
	RecruiterByUserID(ctx context.Context, userID int64) (*models.Recruiter, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService computes role-specific dashboard statistics.
type DashboardService struct {
	repo     dashboardRepository
	profiles profileLookup
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Repo     dashboardRepository
	Profiles profileLookup
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		repo:     params.Repo,
		profiles: params.Profiles,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   logger,
		cfg:      params.Config,
	}
}

// Stats returns the dashboard for the user acting under role. Observers and
// users without a matching profile get an empty result.
func (s *DashboardService) Stats(ctx context.Context, userID int64, role models.UserRole) (*models.DashboardStats, error) {
	if !role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrDomainConstraint, fmt.Sprintf("unknown role %q", role))
	}

	key := fmt.Sprintf("dashboard:%s:%d", role, userID)
	var cached models.DashboardStats
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	stats := &models.DashboardStats{Role: role}
	var err error
	switch role {
	case models.RoleStudent:
		err = s.studentStats(ctx, userID, stats)
	case models.RoleRecruiter:
		err = s.recruiterStats(ctx, userID, stats)
	case models.RoleCollegeAdmin:
		err = s.collegeStats(ctx, userID, stats)
	}
	if err != nil {
		return nil, err
	}

	// A missing profile may be created at any moment; only real stats are cached.
	if !stats.Empty() {
		_ = s.cache.Set(ctx, key, stats, s.cfg.CacheTTL)
	}
	return stats, nil
}

func (s *DashboardService) studentStats(ctx context.Context, userID int64, stats *models.DashboardStats) error {
	student, err := s.profiles.StudentByUserID(ctx, userID)
	if err != nil || student == nil {
		return err
	}
	start := time.Now()
	stats.Applications, err = s.repo.ApplicationStats(ctx, student.ID)
	s.metrics.ObserveDBQuery("dashboard_applications", time.Since(start))
	if err != nil {
		return storeError(err, "failed to load application stats")
	}
	return nil
}

func (s *DashboardService) recruiterStats(ctx context.Context, userID int64, stats *models.DashboardStats) error {
	recruiter, err := s.profiles.RecruiterByUserID(ctx, userID)
	if err != nil || recruiter == nil {
		return err
	}
	start := time.Now()
	stats.Jobs, err = s.repo.JobStats(ctx, recruiter.ID)
	s.metrics.ObserveDBQuery("dashboard_jobs", time.Since(start))
	if err != nil {
		return storeError(err, "failed to load job stats")
	}
	return nil
}

func (s *DashboardService) collegeStats(ctx context.Context, userID int64, stats *models.DashboardStats) error {
	college, err := s.profiles.CollegeByUserID(ctx, userID)
	if err != nil || college == nil {
		return err
	}
	start := time.Now()
	stats.Students, err = s.repo.StudentStats(ctx, college.ID)
	s.metrics.ObserveDBQuery("dashboard_students", time.Since(start))
	if err != nil {
		return storeError(err, "failed to load student stats")
	}
	start = time.Now()
	stats.Placements, err = s.repo.PlacementStats(ctx, college.ID)
	s.metrics.ObserveDBQuery("dashboard_placements", time.Since(start))
	if err != nil {
		stats.Students = nil
		return storeError(err, "failed to load placement stats")
	}
	return nil
}
