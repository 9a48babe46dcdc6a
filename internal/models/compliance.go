package models

import "time"

// ComplianceSubscoreCount is the divisor used for the overall score.
const ComplianceSubscoreCount = 6

// ComplianceScores holds the six recognised NEP sub-scores. Omitted scores are zero.
type ComplianceScores struct {
	Multidisciplinary  int `json:"multidisciplinary" db:"multidisciplinary_score" validate:"min=0,max=100"`
	FlexibleCurriculum int `json:"flexible_curriculum" db:"flexible_curriculum_score" validate:"min=0,max=100"`
	SkillIntegration   int `json:"skill_integration" db:"skill_integration_score" validate:"min=0,max=100"`
	DigitalLiteracy    int `json:"digital_literacy" db:"digital_literacy_score" validate:"min=0,max=100"`
	ResearchCulture    int `json:"research_culture" db:"research_culture_score" validate:"min=0,max=100"`
	IndustryConnect    int `json:"industry_connect" db:"industry_connect_score" validate:"min=0,max=100"`
}

// Overall returns the arithmetic mean of all six sub-scores.
func (s ComplianceScores) Overall() float64 {
	sum := s.Multidisciplinary + s.FlexibleCurriculum + s.SkillIntegration +
		s.DigitalLiteracy + s.ResearchCulture + s.IndustryConnect
	return float64(sum) / ComplianceSubscoreCount
}

// ComplianceSnapshot is one recorded NEP compliance evaluation.
type ComplianceSnapshot struct {
	ID        int64 `db:"compliance_id" json:"compliance_id"`
	CollegeID int64 `db:"college_id" json:"college_id"`
	Year      int   `db:"year" json:"year"`
	ComplianceScores
	OverallScore float64   `db:"overall_score" json:"overall_score"`
	RecordedAt   time.Time `db:"recorded_at" json:"recorded_at"`
}
