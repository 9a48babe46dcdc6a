package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestStudentCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (user_id, full_name, enrollment_number")).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "created_at"}).AddRow(11, time.Now()))

	s := &models.Student{UserID: 1, FullName: "Alice", EnrollmentNumber: strPtr("EN-1")}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, int64(11), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentCreateSecondProfileIsReferential(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("INSERT INTO students").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_students_user"})

	err := repo.Create(context.Background(), &models.Student{UserID: 1, FullName: "Alice"})
	assert.ErrorIs(t, err, appErrors.ErrReferential)
	assert.NotErrorIs(t, err, appErrors.ErrUniqueness)
}

func TestStudentCreateUnknownUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("INSERT INTO students").
		WillReturnError(&pq.Error{Code: "23503", Table: "students"})

	err := repo.Create(context.Background(), &models.Student{UserID: 99, FullName: "Ghost"})
	assert.ErrorIs(t, err, appErrors.ErrReferential)
}

func TestStudentFindByUserID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	cols := []string{"student_id", "user_id", "full_name", "enrollment_number", "college_id", "department", "semester", "cgpa", "phone", "skills", "resume_path", "profile_pic_path", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + studentColumns + " FROM students WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(11, 1, "Alice", "EN-1", nil, "CSE", 6, 8.5, nil, "go", nil, nil, time.Now()))

	s, err := repo.FindByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.FullName)
	assert.Nil(t, s.CollegeID)
	require.NotNil(t, s.CGPA)
	assert.InDelta(t, 8.5, *s.CGPA, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileLookupsPassThroughNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("FROM colleges WHERE user_id").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("FROM recruiters WHERE recruiter_id").WillReturnError(sql.ErrNoRows)

	_, err := NewCollegeRepository(db).FindByUserID(context.Background(), 5)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = NewRecruiterRepository(db).FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeCreateDuplicateName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO colleges").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_colleges_name"})

	err := NewCollegeRepository(db).Create(context.Background(), &models.College{UserID: 2, CollegeName: "IIT"})
	assert.ErrorIs(t, err, appErrors.ErrUniqueness)
}

func TestRecruiterCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recruiters (user_id, company_name")).
		WithArgs(int64(3), "Acme", nil, nil, nil, nil, "hr@acme.test", nil).
		WillReturnRows(sqlmock.NewRows([]string{"recruiter_id", "created_at"}).AddRow(4, time.Now()))

	rec := &models.Recruiter{UserID: 3, CompanyName: "Acme", ContactEmail: strPtr("hr@acme.test")}
	require.NoError(t, NewRecruiterRepository(db).Create(context.Background(), rec))
	assert.Equal(t, int64(4), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
