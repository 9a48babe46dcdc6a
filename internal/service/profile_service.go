package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
)

type studentRepository interface {
	Create(ctx context.Context, s *models.Student) error
	FindByUserID(ctx context.Context, userID int64) (*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

type collegeRepository interface {
	Create(ctx context.Context, c *models.College) error
	FindByUserID(ctx context.Context, userID int64) (*models.College, error)
	FindByID(ctx context.Context, id int64) (*models.College, error)
}

type recruiterRepository interface {
	Create(ctx context.Context, r *models.Recruiter) error
	FindByUserID(ctx context.Context, userID int64) (*models.Recruiter, error)
	FindByID(ctx context.Context, id int64) (*models.Recruiter, error)
}

// ProfileService manages the role-specific profiles attached to users.
type ProfileService struct {
	students   studentRepository
	colleges   collegeRepository
	recruiters recruiterRepository
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(students studentRepository, colleges collegeRepository, recruiters recruiterRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{students: students, colleges: colleges, recruiters: recruiters, cache: cache, validator: validate, logger: logger}
}

// CreateStudent attaches a student profile to userID.
func (s *ProfileService) CreateStudent(ctx context.Context, userID int64, req dto.CreateStudentRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid student profile")
	}
	semester := req.Semester
	student := &models.Student{
		UserID:           userID,
		FullName:         req.FullName,
		EnrollmentNumber: optional(req.EnrollmentNumber),
		CollegeID:        req.CollegeID,
		Department:       optional(req.Department),
		Semester:         &semester,
		CGPA:             req.CGPA,
		Phone:            optional(req.Phone),
		Skills:           optional(req.Skills),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return 0, storeError(err, "failed to create student profile")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return student.ID, nil
}

// CreateCollege attaches a college profile to userID.
func (s *ProfileService) CreateCollege(ctx context.Context, userID int64, req dto.CreateCollegeRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid college profile")
	}
	college := &models.College{
		UserID:                userID,
		CollegeName:           req.CollegeName,
		UniversityAffiliation: optional(req.UniversityAffiliation),
		Location:              optional(req.Location),
		Accreditation:         optional(req.Accreditation),
		ContactEmail:          optional(req.ContactEmail),
		ContactPhone:          optional(req.ContactPhone),
		Website:               optional(req.Website),
	}
	if err := s.colleges.Create(ctx, college); err != nil {
		return 0, storeError(err, "failed to create college profile")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return college.ID, nil
}

// CreateRecruiter attaches a recruiter profile to userID.
func (s *ProfileService) CreateRecruiter(ctx context.Context, userID int64, req dto.CreateRecruiterRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, invalidInput(err, "invalid recruiter profile")
	}
	recruiter := &models.Recruiter{
		UserID:        userID,
		CompanyName:   req.CompanyName,
		Industry:      optional(req.Industry),
		CompanySize:   optional(req.CompanySize),
		Website:       optional(req.Website),
		ContactPerson: optional(req.ContactPerson),
		ContactEmail:  optional(req.ContactEmail),
		ContactPhone:  optional(req.ContactPhone),
	}
	if err := s.recruiters.Create(ctx, recruiter); err != nil {
		return 0, storeError(err, "failed to create recruiter profile")
	}
	_ = s.cache.Invalidate(ctx, dashboardCachePattern)
	return recruiter.ID, nil
}

// StudentByUserID returns the user's student profile or nil.
func (s *ProfileService) StudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return lookup(s.students.FindByUserID(ctx, userID))
}

// StudentByID returns a student profile or nil.
func (s *ProfileService) StudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return lookup(s.students.FindByID(ctx, id))
}

// CollegeByUserID returns the user's college profile or nil.
func (s *ProfileService) CollegeByUserID(ctx context.Context, userID int64) (*models.College, error) {
	return lookup(s.colleges.FindByUserID(ctx, userID))
}

// CollegeByID returns a college profile or nil.
func (s *ProfileService) CollegeByID(ctx context.Context, id int64) (*models.College, error) {
	return lookup(s.colleges.FindByID(ctx, id))
}

// RecruiterByUserID returns the user's recruiter profile or nil.
func (s *ProfileService) RecruiterByUserID(ctx context.Context, userID int64) (*models.Recruiter, error) {
	return lookup(s.recruiters.FindByUserID(ctx, userID))
}

// RecruiterByID returns a recruiter profile or nil.
func (s *ProfileService) RecruiterByID(ctx context.Context, id int64) (*models.Recruiter, error) {
	return lookup(s.recruiters.FindByID(ctx, id))
}

// lookup turns a missing row into a nil result.
func lookup[T any](v *T, err error) (*T, error) {
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storeError(err, "failed to load record")
	}
	return v, nil
}
