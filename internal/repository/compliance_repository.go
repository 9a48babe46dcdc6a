package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// ComplianceRepository stores NEP compliance snapshots. Snapshots are only
// ever appended.
type ComplianceRepository struct {
	db *sqlx.DB
}

// NewComplianceRepository constructs a ComplianceRepository.
func NewComplianceRepository(db *sqlx.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

// Create appends a snapshot.
func (r *ComplianceRepository) Create(ctx context.Context, snap *models.ComplianceSnapshot) error {
	const query = `INSERT INTO nep_compliance (college_id, year, multidisciplinary_score, flexible_curriculum_score,
		skill_integration_score, digital_literacy_score, research_culture_score, industry_connect_score, overall_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING compliance_id, recorded_at`
	row := r.db.QueryRowxContext(ctx, query,
		snap.CollegeID, snap.Year, snap.Multidisciplinary, snap.FlexibleCurriculum, snap.SkillIntegration,
		snap.DigitalLiteracy, snap.ResearchCulture, snap.IndustryConnect, snap.OverallScore,
	)
	if err := row.Scan(&snap.ID, &snap.RecordedAt); err != nil {
		return translate(err, "create compliance snapshot")
	}
	return nil
}

// ListByCollege returns a college's snapshots, newest year first.
func (r *ComplianceRepository) ListByCollege(ctx context.Context, collegeID int64) ([]models.ComplianceSnapshot, error) {
	const query = `SELECT compliance_id, college_id, year, multidisciplinary_score, flexible_curriculum_score,
		skill_integration_score, digital_literacy_score, research_culture_score, industry_connect_score,
		overall_score, recorded_at
		FROM nep_compliance WHERE college_id = $1 ORDER BY year DESC, recorded_at DESC`
	var snaps []models.ComplianceSnapshot
	if err := r.db.SelectContext(ctx, &snaps, query, collegeID); err != nil {
		return nil, translate(err, "list compliance snapshots")
	}
	return snaps, nil
}
