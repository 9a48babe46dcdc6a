package dto

import "github.com/noah-isme/placement-api/internal/models"

// CreateApplicationRequest submits a student's application to a job.
type CreateApplicationRequest struct {
	JobID       int64  `json:"job_id" validate:"required,gt=0"`
	CoverLetter string `json:"cover_letter" validate:"max=8192"`
	ResumePath  string `json:"resume_path" validate:"max=512"`
}

// UpdateApplicationStatusRequest moves an application along its lifecycle.
type UpdateApplicationStatusRequest struct {
	Status   models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected accepted"`
	Feedback string                   `json:"feedback" validate:"max=4096"`
}
