package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

const collegeColumns = `college_id, user_id, college_name, university_affiliation, location, accreditation, contact_email, contact_phone, website, created_at`

// CollegeRepository manages persistence for college profiles.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a college profile for an existing user.
func (r *CollegeRepository) Create(ctx context.Context, c *models.College) error {
	const query = `INSERT INTO colleges (user_id, college_name, university_affiliation, location, accreditation, contact_email, contact_phone, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING college_id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		c.UserID, c.CollegeName, c.UniversityAffiliation, c.Location, c.Accreditation,
		c.ContactEmail, c.ContactPhone, c.Website,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return translate(err, "create college")
	}
	return nil
}

// FindByUserID returns the college profile owned by a user.
func (r *CollegeRepository) FindByUserID(ctx context.Context, userID int64) (*models.College, error) {
	const query = `SELECT ` + collegeColumns + ` FROM colleges WHERE user_id = $1`
	var c models.College
	if err := r.db.GetContext(ctx, &c, query, userID); err != nil {
		return nil, translate(err, "find college by user")
	}
	return &c, nil
}

// FindByID returns a college profile by identifier.
func (r *CollegeRepository) FindByID(ctx context.Context, id int64) (*models.College, error) {
	const query = `SELECT ` + collegeColumns + ` FROM colleges WHERE college_id = $1`
	var c models.College
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, translate(err, "find college by id")
	}
	return &c, nil
}
