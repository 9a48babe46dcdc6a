package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// ApplicationRepository manages job applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs an ApplicationRepository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a pending application.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	const query = `INSERT INTO applications (student_id, job_id, cover_letter, resume_path)
		VALUES ($1, $2, $3, $4) RETURNING application_id, application_date, status`
	row := r.db.QueryRowxContext(ctx, query, app.StudentID, app.JobID, app.CoverLetter, app.ResumePath)
	if err := row.Scan(&app.ID, &app.ApplicationDate, &app.Status); err != nil {
		return translate(err, "create application")
	}
	return nil
}

// ListForStudent returns a student's applications with job and company details.
func (r *ApplicationRepository) ListForStudent(ctx context.Context, studentID int64) ([]models.StudentApplication, error) {
	const query = `SELECT a.application_id, a.student_id, a.job_id, a.application_date, a.status, a.cover_letter,
		a.resume_path, a.feedback, j.title, r.company_name, j.location
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN recruiters r ON r.recruiter_id = j.recruiter_id
		WHERE a.student_id = $1
		ORDER BY a.application_date DESC, a.application_id DESC`
	var apps []models.StudentApplication
	if err := r.db.SelectContext(ctx, &apps, query, studentID); err != nil {
		return nil, translate(err, "list student applications")
	}
	return apps, nil
}

// ListForJob returns the applicants for a job.
func (r *ApplicationRepository) ListForJob(ctx context.Context, jobID int64) ([]models.JobApplicant, error) {
	const query = `SELECT a.application_id, a.student_id, a.job_id, a.application_date, a.status, a.cover_letter,
		a.resume_path, a.feedback, s.full_name, s.enrollment_number, s.cgpa, s.user_id AS student_user_id
		FROM applications a
		JOIN students s ON s.student_id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.application_date DESC, a.application_id DESC`
	var apps []models.JobApplicant
	if err := r.db.SelectContext(ctx, &apps, query, jobID); err != nil {
		return nil, translate(err, "list job applicants")
	}
	return apps, nil
}

// LockForReview reads an application row under FOR UPDATE inside tx.
func (r *ApplicationRepository) LockForReview(ctx context.Context, tx *sqlx.Tx, applicationID int64) (*models.ApplicationReview, error) {
	const query = `SELECT a.application_id, a.status, s.user_id AS student_user_id, j.recruiter_id, j.title
		FROM applications a
		JOIN students s ON s.student_id = a.student_id
		JOIN jobs j ON j.job_id = a.job_id
		WHERE a.application_id = $1
		FOR UPDATE OF a`
	var review models.ApplicationReview
	if err := tx.GetContext(ctx, &review, query, applicationID); err != nil {
		return nil, translate(err, "lock application")
	}
	return &review, nil
}

// Owners returns the recruiter of the application's job and the college of
// the applying student.
func (r *ApplicationRepository) Owners(ctx context.Context, applicationID int64) (*models.Owners, error) {
	const query = `SELECT j.recruiter_id, s.college_id
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN students s ON s.student_id = a.student_id
		WHERE a.application_id = $1`
	var owners models.Owners
	if err := r.db.GetContext(ctx, &owners, query, applicationID); err != nil {
		return nil, translate(err, "load application owners")
	}
	return &owners, nil
}

// UpdateStatus writes the new status and optional feedback. A nil feedback
// keeps the stored value.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, applicationID int64, status models.ApplicationStatus, feedback *string) error {
	const query = `UPDATE applications SET status = $2, feedback = COALESCE($3, feedback) WHERE application_id = $1`
	if _, err := tx.ExecContext(ctx, query, applicationID, status, feedback); err != nil {
		return translate(err, "update application status")
	}
	return nil
}
