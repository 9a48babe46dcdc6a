package dto

import (
	"time"

	"github.com/noah-isme/placement-api/internal/models"
)

// RecordPlacementRequest records an offer for a student.
type RecordPlacementRequest struct {
	StudentID      int64      `json:"student_id" validate:"required,gt=0"`
	JobID          int64      `json:"job_id" validate:"required,gt=0"`
	PlacementDate  *time.Time `json:"placement_date"`
	PackageOffered *float64   `json:"package_offered" validate:"omitempty,gte=0"`
	JoiningDate    *time.Time `json:"joining_date"`
}

// UpdatePlacementStatusRequest moves a placement along its lifecycle.
type UpdatePlacementStatusRequest struct {
	Status models.PlacementStatus `json:"status" validate:"required,oneof=offered accepted joined rejected"`
}
