package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements creates the placement schema. Every statement is
// "create if absent" so the list can be replayed against a live database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		CONSTRAINT uq_users_username UNIQUE (username),
		CONSTRAINT uq_users_email UNIQUE (email),
		CONSTRAINT ck_users_role CHECK (role IN ('student', 'college_admin', 'recruiter', 'observer'))
	)`,
	`CREATE TABLE IF NOT EXISTS colleges (
		college_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		college_name TEXT NOT NULL,
		university_affiliation TEXT,
		location TEXT,
		accreditation TEXT,
		contact_email TEXT,
		contact_phone TEXT,
		website TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_colleges_user UNIQUE (user_id),
		CONSTRAINT uq_colleges_name UNIQUE (college_name)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		student_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		enrollment_number TEXT,
		college_id BIGINT REFERENCES colleges(college_id) ON DELETE SET NULL,
		department TEXT,
		semester INTEGER,
		cgpa DOUBLE PRECISION,
		phone TEXT,
		skills TEXT,
		resume_path TEXT,
		profile_pic_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_students_user UNIQUE (user_id),
		CONSTRAINT uq_students_enrollment UNIQUE (enrollment_number)
	)`,
	`CREATE TABLE IF NOT EXISTS recruiters (
		recruiter_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		company_name TEXT NOT NULL,
		industry TEXT,
		company_size TEXT,
		website TEXT,
		contact_person TEXT,
		contact_email TEXT,
		contact_phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_recruiters_user UNIQUE (user_id),
		CONSTRAINT uq_recruiters_contact_email UNIQUE (contact_email)
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		job_id BIGSERIAL PRIMARY KEY,
		recruiter_id BIGINT NOT NULL REFERENCES recruiters(recruiter_id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		requirements TEXT,
		location TEXT,
		job_type TEXT,
		salary_range TEXT,
		skills_required TEXT,
		posted_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deadline DATE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		CONSTRAINT ck_jobs_type CHECK (job_type IN ('full_time', 'internship', 'contract'))
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		application_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		job_id BIGINT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
		application_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status TEXT NOT NULL DEFAULT 'pending',
		cover_letter TEXT,
		resume_path TEXT,
		feedback TEXT,
		CONSTRAINT uq_applications_student_job UNIQUE (student_id, job_id),
		CONSTRAINT ck_applications_status CHECK (status IN ('pending', 'reviewed', 'shortlisted', 'rejected', 'accepted'))
	)`,
	`CREATE TABLE IF NOT EXISTS placements (
		placement_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		job_id BIGINT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
		college_id BIGINT REFERENCES colleges(college_id) ON DELETE CASCADE,
		placement_date DATE,
		package_offered DOUBLE PRECISION,
		joining_date DATE,
		status TEXT NOT NULL DEFAULT 'offered',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_placements_student UNIQUE (student_id),
		CONSTRAINT ck_placements_status CHECK (status IN ('offered', 'accepted', 'joined', 'rejected'))
	)`,
	`CREATE TABLE IF NOT EXISTS student_skills (
		skill_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		skill_name TEXT NOT NULL,
		proficiency_level INTEGER,
		certification TEXT,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT ck_student_skills_proficiency CHECK (proficiency_level BETWEEN 1 AND 10)
	)`,
	`CREATE TABLE IF NOT EXISTS interview_feedback (
		feedback_id BIGSERIAL PRIMARY KEY,
		application_id BIGINT NOT NULL REFERENCES applications(application_id) ON DELETE CASCADE,
		interviewer_id BIGINT NOT NULL REFERENCES recruiters(recruiter_id) ON DELETE CASCADE,
		technical_skills INTEGER CHECK (technical_skills BETWEEN 1 AND 10),
		communication INTEGER CHECK (communication BETWEEN 1 AND 10),
		problem_solving INTEGER CHECK (problem_solving BETWEEN 1 AND 10),
		attitude INTEGER CHECK (attitude BETWEEN 1 AND 10),
		overall_rating INTEGER CHECK (overall_rating BETWEEN 1 AND 10),
		strengths TEXT,
		areas_for_improvement TEXT,
		recommendation TEXT,
		feedback_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_interview_feedback_interviewer UNIQUE (application_id, interviewer_id),
		CONSTRAINT ck_interview_feedback_recommendation CHECK (recommendation IN ('strong_hire', 'hire', 'consider', 'reject'))
	)`,
	`CREATE TABLE IF NOT EXISTS nep_compliance (
		compliance_id BIGSERIAL PRIMARY KEY,
		college_id BIGINT NOT NULL REFERENCES colleges(college_id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		multidisciplinary_score INTEGER NOT NULL DEFAULT 0,
		flexible_curriculum_score INTEGER NOT NULL DEFAULT 0,
		skill_integration_score INTEGER NOT NULL DEFAULT 0,
		digital_literacy_score INTEGER NOT NULL DEFAULT 0,
		research_culture_score INTEGER NOT NULL DEFAULT 0,
		industry_connect_score INTEGER NOT NULL DEFAULT 0,
		overall_score DOUBLE PRECISION NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blockchain_credentials (
		credential_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		credential_type TEXT NOT NULL,
		credential_hash TEXT NOT NULL,
		issuer TEXT,
		issue_date DATE,
		expiration_date DATE,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		blockchain_tx_id TEXT,
		metadata JSONB,
		CONSTRAINT uq_blockchain_credentials_hash UNIQUE (credential_hash)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		notification_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		notification_type TEXT NOT NULL DEFAULT 'info',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT ck_notifications_type CHECK (notification_type IN ('info', 'warning', 'success', 'error', 'job', 'application'))
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		audit_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(user_id) ON DELETE SET NULL,
		action TEXT NOT NULL,
		resource TEXT NOT NULL,
		resource_id TEXT,
		details JSONB,
		ip_address TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_recruiter ON jobs(recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_student ON applications(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_students_college ON students(college_id)`,
	`CREATE INDEX IF NOT EXISTS idx_placements_college ON placements(college_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource, resource_id)`,
}

// Tables lists the tables created by EnsureSchema in dependency order.
var Tables = []string{
	"users", "colleges", "students", "recruiters", "jobs", "applications", "placements",
	"student_skills", "interview_feedback", "nep_compliance", "blockchain_credentials", "notifications",
	"audit_logs",
}

// EnsureSchema creates all tables and indexes that do not exist yet. It never
// alters or drops existing objects.
func EnsureSchema(ctx context.Context, db *sqlx.DB) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, stmt := range schemaStatements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}
