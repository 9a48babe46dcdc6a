package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

const recruiterColumns = `recruiter_id, user_id, company_name, industry, company_size, website, contact_person, contact_email, contact_phone, created_at`

// RecruiterRepository manages persistence for recruiter profiles.
type RecruiterRepository struct {
	db *sqlx.DB
}

// NewRecruiterRepository constructs a RecruiterRepository.
func NewRecruiterRepository(db *sqlx.DB) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

// Create inserts a recruiter profile for an existing user.
func (r *RecruiterRepository) Create(ctx context.Context, rec *models.Recruiter) error {
	const query = `INSERT INTO recruiters (user_id, company_name, industry, company_size, website, contact_person, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING recruiter_id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		rec.UserID, rec.CompanyName, rec.Industry, rec.CompanySize, rec.Website,
		rec.ContactPerson, rec.ContactEmail, rec.ContactPhone,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return translate(err, "create recruiter")
	}
	return nil
}

// FindByUserID returns the recruiter profile owned by a user.
func (r *RecruiterRepository) FindByUserID(ctx context.Context, userID int64) (*models.Recruiter, error) {
	const query = `SELECT ` + recruiterColumns + ` FROM recruiters WHERE user_id = $1`
	var rec models.Recruiter
	if err := r.db.GetContext(ctx, &rec, query, userID); err != nil {
		return nil, translate(err, "find recruiter by user")
	}
	return &rec, nil
}

// FindByID returns a recruiter profile by identifier.
func (r *RecruiterRepository) FindByID(ctx context.Context, id int64) (*models.Recruiter, error) {
	const query = `SELECT ` + recruiterColumns + ` FROM recruiters WHERE recruiter_id = $1`
	var rec models.Recruiter
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, translate(err, "find recruiter by id")
	}
	return &rec, nil
}
