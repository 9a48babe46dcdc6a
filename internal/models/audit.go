package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Audit actions recorded for state-changing requests.
const (
	AuditActionUserDelete        = "USER_DELETE"
	AuditActionJobDeactivate     = "JOB_DEACTIVATE"
	AuditActionApplicationStatus = "APPLICATION_STATUS"
	AuditActionPlacementRecord   = "PLACEMENT_RECORD"
	AuditActionPlacementStatus   = "PLACEMENT_STATUS"
	AuditActionCredentialIssue   = "CREDENTIAL_ISSUE"
)

// AuditLog is one entry of the audit trail.
type AuditLog struct {
	ID         int64          `db:"audit_id" json:"audit_id"`
	UserID     *int64         `db:"user_id" json:"user_id,omitempty"`
	Action     string         `db:"action" json:"action"`
	Resource   string         `db:"resource" json:"resource"`
	ResourceID *string        `db:"resource_id" json:"resource_id,omitempty"`
	Details    types.JSONText `db:"details" json:"details,omitempty"`
	IPAddress  string         `db:"ip_address" json:"ip_address"`
	UserAgent  string         `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}
