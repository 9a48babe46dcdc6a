package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
)

type jobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id int64) (*models.Job, error)
	ListActive(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error)
	Deactivate(ctx context.Context, recruiterID, jobID int64) (bool, error)
}

// JobService manages job postings.
type JobService struct {
	repo      jobRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJobService constructs a JobService.
func NewJobService(repo jobRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *JobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create publishes a job for the recruiter and returns its id.
func (s *JobService) Create(ctx context.Context, recruiterID int64, req dto.CreateJobRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid job payload")
	}
	job := &models.Job{
		RecruiterID:    recruiterID,
		Title:          req.Title,
		Description:    optional(req.Description),
		Requirements:   optional(req.Requirements),
		Location:       optional(req.Location),
		JobType:        req.JobType,
		SalaryRange:    optional(req.SalaryRange),
		SkillsRequired: optional(req.SkillsRequired),
		Deadline:       req.Deadline,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return 0, storeError(err, "failed to create job")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return job.ID, nil
}

// Get returns a job or nil.
func (s *JobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	return lookup(s.repo.FindByID(ctx, id))
}

// List returns active jobs matching filter, newest first.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, invalidInput(err, "invalid job filter")
	}
	jobs, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, storeError(err, "failed to list jobs")
	}
	if jobs == nil {
		jobs = []models.JobListing{}
	}
	return jobs, nil
}

// Deactivate closes one of the recruiter's jobs.
func (s *JobService) Deactivate(ctx context.Context, recruiterID, jobID int64) error {
	ok, err := s.repo.Deactivate(ctx, recruiterID, jobID)
	if err != nil {
		return storeError(err, "failed to deactivate job")
	}
	if !ok {
		return notFound("job not found")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return nil
}
