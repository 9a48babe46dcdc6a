package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardApplicationStats(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM applications WHERE student_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "accepted", "shortlisted"}).AddRow(4, 1, 2))

	stats, err := repo.ApplicationStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 2, stats.Shortlisted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardJobStats(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE recruiter_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"total_jobs", "active_jobs"}).AddRow(3, 2))

	stats, err := repo.JobStats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, 2, stats.ActiveJobs)
}

func TestDashboardCollegeStatsWithoutStudents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(AVG(cgpa), 0) AS avg_cgpa FROM students WHERE college_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"total_students", "avg_cgpa"}).AddRow(0, 0.0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total_placements FROM placements WHERE college_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"total_placements"}).AddRow(0))

	students, err := repo.StudentStats(context.Background(), 4)
	require.NoError(t, err)
	assert.Zero(t, students.TotalStudents)
	assert.Zero(t, students.AverageCGPA)

	placements, err := repo.PlacementStats(context.Background(), 4)
	require.NoError(t, err)
	assert.Zero(t, placements.TotalPlacements)
	assert.NoError(t, mock.ExpectationsWereMet())
}
