package models

import "time"

// Recommendation is an interviewer's hiring verdict.
type Recommendation string

const (
	RecommendStrongHire Recommendation = "strong_hire"
	RecommendHire       Recommendation = "hire"
	RecommendConsider   Recommendation = "consider"
	RecommendReject     Recommendation = "reject"
)

// InterviewFeedback is one interviewer's evaluation of an application.
type InterviewFeedback struct {
	ID                  int64          `db:"feedback_id" json:"feedback_id"`
	ApplicationID       int64          `db:"application_id" json:"application_id"`
	InterviewerID       int64          `db:"interviewer_id" json:"interviewer_id"`
	TechnicalSkills     int            `db:"technical_skills" json:"technical_skills"`
	Communication       int            `db:"communication" json:"communication"`
	ProblemSolving      int            `db:"problem_solving" json:"problem_solving"`
	Attitude            int            `db:"attitude" json:"attitude"`
	OverallRating       int            `db:"overall_rating" json:"overall_rating"`
	Strengths           *string        `db:"strengths" json:"strengths,omitempty"`
	AreasForImprovement *string        `db:"areas_for_improvement" json:"areas_for_improvement,omitempty"`
	Recommendation      Recommendation `db:"recommendation" json:"recommendation"`
	FeedbackDate        time.Time      `db:"feedback_date" json:"feedback_date"`
}
