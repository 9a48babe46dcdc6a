package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Credential is a student credential record addressed by its unique hash.
type Credential struct {
	ID             int64          `db:"credential_id" json:"credential_id"`
	StudentID      int64          `db:"student_id" json:"student_id"`
	CredentialType string         `db:"credential_type" json:"credential_type"`
	CredentialHash string         `db:"credential_hash" json:"credential_hash"`
	Issuer         *string        `db:"issuer" json:"issuer,omitempty"`
	IssueDate      *time.Time     `db:"issue_date" json:"issue_date,omitempty"`
	ExpirationDate *time.Time     `db:"expiration_date" json:"expiration_date,omitempty"`
	Verified       bool           `db:"verified" json:"verified"`
	TxID           *string        `db:"blockchain_tx_id" json:"blockchain_tx_id,omitempty"`
	Metadata       types.JSONText `db:"metadata" json:"metadata,omitempty"`
}

// ValidAt reports whether the credential's validity window contains t.
func (c Credential) ValidAt(t time.Time) bool {
	if c.IssueDate != nil && t.Before(*c.IssueDate) {
		return false
	}
	if c.ExpirationDate != nil && t.After(*c.ExpirationDate) {
		return false
	}
	return true
}
