package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// DashboardRepository computes dashboard aggregates, one query per section.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// ApplicationStats aggregates a student's applications.
func (r *DashboardRepository) ApplicationStats(ctx context.Context, studentID int64) (*models.ApplicationStats, error) {
	const query = `SELECT COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
		COUNT(*) FILTER (WHERE status = 'shortlisted') AS shortlisted
		FROM applications WHERE student_id = $1`
	var stats models.ApplicationStats
	if err := r.db.GetContext(ctx, &stats, query, studentID); err != nil {
		return nil, translate(err, "application stats")
	}
	return &stats, nil
}

// JobStats aggregates a recruiter's postings.
func (r *DashboardRepository) JobStats(ctx context.Context, recruiterID int64) (*models.JobStats, error) {
	const query = `SELECT COUNT(*) AS total_jobs,
		COUNT(*) FILTER (WHERE is_active) AS active_jobs
		FROM jobs WHERE recruiter_id = $1`
	var stats models.JobStats
	if err := r.db.GetContext(ctx, &stats, query, recruiterID); err != nil {
		return nil, translate(err, "job stats")
	}
	return &stats, nil
}

// StudentStats aggregates a college's students. The average is zero when the
// college has no students with a CGPA.
func (r *DashboardRepository) StudentStats(ctx context.Context, collegeID int64) (*models.StudentStats, error) {
	const query = `SELECT COUNT(*) AS total_students, COALESCE(AVG(cgpa), 0) AS avg_cgpa
		FROM students WHERE college_id = $1`
	var stats models.StudentStats
	if err := r.db.GetContext(ctx, &stats, query, collegeID); err != nil {
		return nil, translate(err, "student stats")
	}
	return &stats, nil
}

// PlacementStats aggregates a college's placements.
func (r *DashboardRepository) PlacementStats(ctx context.Context, collegeID int64) (*models.PlacementStats, error) {
	const query = `SELECT COUNT(*) AS total_placements FROM placements WHERE college_id = $1`
	var stats models.PlacementStats
	if err := r.db.GetContext(ctx, &stats, query, collegeID); err != nil {
		return nil, translate(err, "placement stats")
	}
	return &stats, nil
}
