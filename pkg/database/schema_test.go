package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestEnsureSchemaAppliesEveryStatement(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	for _, table := range Tables {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table + " (")).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range schemaStatements[len(Tables):] {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaRollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS colleges").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := EnsureSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply schema statement 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range schemaStatements {
		assert.Regexp(t, `^CREATE (TABLE|INDEX) IF NOT EXISTS `, stmt)
		assert.NotContains(t, strings.ToUpper(stmt), "DROP ")
	}
}

func TestStudentDependentsCascade(t *testing.T) {
	for _, table := range []string{"applications", "placements", "student_skills", "blockchain_credentials"} {
		stmt := statementFor(t, table)
		assert.Contains(t, stmt, "REFERENCES students(student_id) ON DELETE CASCADE", table)
	}
	for _, table := range []string{"students", "colleges", "recruiters", "notifications"} {
		stmt := statementFor(t, table)
		assert.Contains(t, stmt, "REFERENCES users(user_id) ON DELETE CASCADE", table)
	}
}

func TestAuditLogsOutliveTheirUser(t *testing.T) {
	stmt := statementFor(t, "audit_logs")
	assert.Contains(t, stmt, "REFERENCES users(user_id) ON DELETE SET NULL")
	assert.Contains(t, strings.Join(schemaStatements, "\n"), "idx_audit_logs_resource ON audit_logs(resource, resource_id)")
}

func TestRequiredIndexesDeclared(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	for _, idx := range []string{
		"idx_users_role ON users(role)",
		"idx_jobs_recruiter ON jobs(recruiter_id)",
		"idx_applications_student ON applications(student_id)",
		"idx_applications_job ON applications(job_id)",
		"idx_notifications_user ON notifications(user_id)",
	} {
		assert.Contains(t, joined, idx)
	}
}

func statementFor(t *testing.T, table string) string {
	t.Helper()
	prefix := "CREATE TABLE IF NOT EXISTS " + table + " ("
	for _, stmt := range schemaStatements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}
	t.Fatalf("no statement for table %s", table)
	return ""
}
