package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
)

type skillRepository interface {
	Create(ctx context.Context, skill *models.StudentSkill) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentSkill, error)
}

// SkillService manages self-declared student skills.
type SkillService struct {
	repo      skillRepository
	validator *validator.Validate
}

// NewSkillService constructs a SkillService.
func NewSkillService(repo skillRepository, validate *validator.Validate) *SkillService {
	if validate == nil {
		validate = validator.New()
	}
	return &SkillService{repo: repo, validator: validate}
}

// Add declares a skill for the student.
func (s *SkillService) Add(ctx context.Context, studentID int64, req dto.AddSkillRequest) (*models.StudentSkill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err, "invalid skill payload")
	}
	skill := &models.StudentSkill{
		StudentID:        studentID,
		SkillName:        req.SkillName,
		ProficiencyLevel: req.ProficiencyLevel,
		Certification:    optional(req.Certification),
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, storeError(err, "failed to add skill")
	}
	return skill, nil
}

// List returns the student's skills.
func (s *SkillService) List(ctx context.Context, studentID int64) ([]models.StudentSkill, error) {
	skills, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to list skills")
	}
	if skills == nil {
		skills = []models.StudentSkill{}
	}
	return skills, nil
}
