package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

// PostgreSQL SQLSTATE codes the store distinguishes.
const (
	pqUniqueViolation     pq.ErrorCode = "23505"
	pqForeignKeyViolation pq.ErrorCode = "23503"
	pqCheckViolation      pq.ErrorCode = "23514"
	pqNotNullViolation    pq.ErrorCode = "23502"
	pqInvalidText         pq.ErrorCode = "22P02"
	pqStringTooLong       pq.ErrorCode = "22001"
	pqNumericOutOfRange   pq.ErrorCode = "22003"
	pqAdminShutdown       pq.ErrorCode = "57P01"
	pqCrashShutdown       pq.ErrorCode = "57P02"
	pqCannotConnectNow    pq.ErrorCode = "57P03"
)

// A second profile for the same user trips the user_id unique constraint, but
// callers see it as a broken one-to-one link rather than a duplicate value.
var profileOwnerConstraints = map[string]string{
	"uq_students_user":   "user already owns a student profile",
	"uq_colleges_user":   "user already owns a college profile",
	"uq_recruiters_user": "user already owns a recruiter profile",
}

var constraintMessages = map[string]string{
	"uq_users_username":                    "username already exists",
	"uq_users_email":                       "email already exists",
	"uq_students_enrollment":               "enrollment number already exists",
	"uq_colleges_name":                     "college name already exists",
	"uq_recruiters_contact_email":          "recruiter contact email already exists",
	"uq_applications_student_job":          "student already applied to this job",
	"uq_placements_student":                "student already has a placement",
	"uq_blockchain_credentials_hash":       "credential hash already exists",
	"uq_interview_feedback_interviewer":    "interviewer already submitted feedback for this application",
	"ck_users_role":                        "role is not recognised",
	"ck_jobs_type":                         "job type is not recognised",
	"ck_applications_status":               "application status is not recognised",
	"ck_placements_status":                 "placement status is not recognised",
	"ck_student_skills_proficiency":        "proficiency level must be between 1 and 10",
	"ck_interview_feedback_recommendation": "recommendation is not recognised",
	"ck_notifications_type":                "notification type is not recognised",
}

// translate maps driver errors onto the store's failure kinds. Errors it does
// not recognise are wrapped with the operation name and returned as-is.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	wrapped := fmt.Errorf("%s: %w", op, err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if msg, ok := profileOwnerConstraints[pqErr.Constraint]; ok {
				return appErrors.Kind(appErrors.ErrReferential, wrapped, msg)
			}
			return appErrors.Kind(appErrors.ErrUniqueness, wrapped, constraintMessages[pqErr.Constraint])
		case pqForeignKeyViolation:
			return appErrors.Kind(appErrors.ErrReferential, wrapped, referentialMessage(pqErr))
		case pqCheckViolation, pqNotNullViolation, pqInvalidText, pqStringTooLong, pqNumericOutOfRange:
			return appErrors.Kind(appErrors.ErrDomainConstraint, wrapped, constraintMessages[pqErr.Constraint])
		case pqAdminShutdown, pqCrashShutdown, pqCannotConnectNow:
			return appErrors.Kind(appErrors.ErrConnection, wrapped, "")
		}
		if pqErr.Code.Class() == "08" {
			return appErrors.Kind(appErrors.ErrConnection, wrapped, "")
		}
		return wrapped
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return appErrors.Kind(appErrors.ErrConnection, wrapped, "")
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return appErrors.Kind(appErrors.ErrConnection, wrapped, "")
	}
	return wrapped
}

func referentialMessage(pqErr *pq.Error) string {
	if pqErr.Table != "" {
		return fmt.Sprintf("referenced record for %s does not exist", pqErr.Table)
	}
	return ""
}
