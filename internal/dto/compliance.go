package dto

import "github.com/noah-isme/placement-api/internal/models"

// SaveComplianceRequest records one NEP compliance snapshot.
type SaveComplianceRequest struct {
	Year   int                     `json:"year" validate:"required,min=2000,max=2100"`
	Scores models.ComplianceScores `json:"scores"`
}
