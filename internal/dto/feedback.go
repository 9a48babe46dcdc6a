package dto

import "github.com/noah-isme/placement-api/internal/models"

// SubmitFeedbackRequest records an interviewer's evaluation.
type SubmitFeedbackRequest struct {
	ApplicationID       int64                 `json:"application_id" validate:"required,gt=0"`
	InterviewerID       int64                 `json:"-" validate:"required,gt=0"`
	TechnicalSkills     int                   `json:"technical_skills" validate:"min=1,max=10"`
	Communication       int                   `json:"communication" validate:"min=1,max=10"`
	ProblemSolving      int                   `json:"problem_solving" validate:"min=1,max=10"`
	Attitude            int                   `json:"attitude" validate:"min=1,max=10"`
	OverallRating       int                   `json:"overall_rating" validate:"min=1,max=10"`
	Strengths           string                `json:"strengths" validate:"max=4096"`
	AreasForImprovement string                `json:"areas_for_improvement" validate:"max=4096"`
	Recommendation      models.Recommendation `json:"recommendation" validate:"required,oneof=strong_hire hire consider reject"`
}
