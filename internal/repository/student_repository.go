package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

const studentColumns = `student_id, user_id, full_name, enrollment_number, college_id, department, semester, cgpa, phone, skills, resume_path, profile_pic_path, created_at`

// StudentRepository manages persistence for student profiles.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student profile for an existing user.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	const query = `INSERT INTO students (user_id, full_name, enrollment_number, college_id, department, semester, cgpa, phone, skills, resume_path, profile_pic_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING student_id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		s.UserID, s.FullName, s.EnrollmentNumber, s.CollegeID, s.Department, s.Semester,
		s.CGPA, s.Phone, s.Skills, s.ResumePath, s.ProfilePicPath,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return translate(err, "create student")
	}
	return nil
}

// FindByUserID returns the student profile owned by a user.
func (r *StudentRepository) FindByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`
	var s models.Student
	if err := r.db.GetContext(ctx, &s, query, userID); err != nil {
		return nil, translate(err, "find student by user")
	}
	return &s, nil
}

// FindByID returns a student profile by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`
	var s models.Student
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, translate(err, "find student by id")
	}
	return &s, nil
}
