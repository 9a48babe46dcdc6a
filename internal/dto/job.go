package dto

import (
	"time"

	"github.com/noah-isme/placement-api/internal/models"
)

// CreateJobRequest describes a new job posting.
type CreateJobRequest struct {
	Title          string         `json:"title" validate:"required,max=256"`
	Description    string         `json:"description" validate:"required"`
	Requirements   string         `json:"requirements"`
	Location       string         `json:"location" validate:"required,max=256"`
	JobType        models.JobType `json:"job_type" validate:"required,oneof=full_time internship contract"`
	SalaryRange    string         `json:"salary_range" validate:"max=64"`
	SkillsRequired string         `json:"skills_required" validate:"max=1024"`
	Deadline       *time.Time     `json:"deadline"`
}
