package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// PlacementRepository stores finalized placements.
type PlacementRepository struct {
	db *sqlx.DB
}

// NewPlacementRepository constructs a PlacementRepository.
func NewPlacementRepository(db *sqlx.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// Create inserts a placement in the offered state.
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) error {
	const query = `INSERT INTO placements (student_id, job_id, college_id, placement_date, package_offered, joining_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING placement_id, status, created_at`
	row := r.db.QueryRowxContext(ctx, query, p.StudentID, p.JobID, p.CollegeID, p.PlacementDate, p.PackageOffered, p.JoiningDate)
	if err := row.Scan(&p.ID, &p.Status, &p.CreatedAt); err != nil {
		return translate(err, "create placement")
	}
	return nil
}

// Lock reads a placement's status and owners under FOR UPDATE inside tx.
func (r *PlacementRepository) Lock(ctx context.Context, tx *sqlx.Tx, placementID int64) (*models.PlacementLock, error) {
	const query = `SELECT p.status, p.college_id, j.recruiter_id
		FROM placements p
		JOIN jobs j ON j.job_id = p.job_id
		WHERE p.placement_id = $1
		FOR UPDATE OF p`
	var lock models.PlacementLock
	if err := tx.GetContext(ctx, &lock, query, placementID); err != nil {
		return nil, translate(err, "lock placement")
	}
	return &lock, nil
}

// UpdateStatus writes a placement status inside tx.
func (r *PlacementRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, placementID int64, status models.PlacementStatus) error {
	const query = `UPDATE placements SET status = $2 WHERE placement_id = $1`
	if _, err := tx.ExecContext(ctx, query, placementID, status); err != nil {
		return translate(err, "update placement status")
	}
	return nil
}

// ListReportForCollege returns report rows for the college's placements.
func (r *PlacementRepository) ListReportForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error) {
	const query = `SELECT p.placement_id, s.full_name, s.enrollment_number, s.department, rc.company_name, j.title,
		p.package_offered, p.joining_date, p.status
		FROM placements p
		JOIN students s ON s.student_id = p.student_id
		JOIN jobs j ON j.job_id = p.job_id
		JOIN recruiters rc ON rc.recruiter_id = j.recruiter_id
		WHERE p.college_id = $1
		ORDER BY p.created_at DESC, p.placement_id DESC`
	var rows []models.PlacementReportRow
	if err := r.db.SelectContext(ctx, &rows, query, collegeID); err != nil {
		return nil, translate(err, "list college placements")
	}
	return rows, nil
}
