package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// JobRepository handles persistence for job postings.
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository constructs a JobRepository.
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a job posting. New postings are always active.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	const query = `INSERT INTO jobs (recruiter_id, title, description, requirements, location, job_type, salary_range, skills_required, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING job_id, posted_date, is_active`
	row := r.db.QueryRowxContext(ctx, query,
		job.RecruiterID, job.Title, job.Description, job.Requirements, job.Location,
		job.JobType, job.SalaryRange, job.SkillsRequired, job.Deadline,
	)
	if err := row.Scan(&job.ID, &job.PostedDate, &job.Active); err != nil {
		return translate(err, "create job")
	}
	return nil
}

// FindByID returns a job by identifier regardless of its active flag.
func (r *JobRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	const query = `SELECT job_id, recruiter_id, title, description, requirements, location, job_type, salary_range,
		skills_required, posted_date, deadline, is_active FROM jobs WHERE job_id = $1`
	var job models.Job
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, translate(err, "find job by id")
	}
	return &job, nil
}

// ListActive returns active jobs with their company name, newest first.
func (r *JobRepository) ListActive(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	var (
		conditions = []string{"j.is_active = TRUE"}
		args       []interface{}
	)
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		conditions = append(conditions, fmt.Sprintf("j.job_type = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+escapeLike(filter.Location)+"%")
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.Skills != "" {
		args = append(args, "%"+escapeLike(filter.Skills)+"%")
		conditions = append(conditions, fmt.Sprintf("j.skills_required ILIKE $%d", len(args)))
	}

	query := `SELECT j.job_id, j.recruiter_id, j.title, j.description, j.requirements, j.location, j.job_type,
		j.salary_range, j.skills_required, j.posted_date, j.deadline, j.is_active, r.company_name
		FROM jobs j JOIN recruiters r ON r.recruiter_id = j.recruiter_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY j.posted_date DESC, j.job_id DESC`

	var jobs []models.JobListing
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, translate(err, "list jobs")
	}
	return jobs, nil
}

// Deactivate marks a recruiter's job inactive. It reports whether the job was found.
func (r *JobRepository) Deactivate(ctx context.Context, recruiterID, jobID int64) (bool, error) {
	const query = `UPDATE jobs SET is_active = FALSE WHERE job_id = $1 AND recruiter_id = $2`
	res, err := r.db.ExecContext(ctx, query, jobID, recruiterID)
	if err != nil {
		return false, translate(err, "deactivate job")
	}
	return affected(res)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
