package dto

import (
	"encoding/json"
	"time"
)

// IssueCredentialRequest records a credential for a student. When Hash is
// empty one is derived from the credential fields.
type IssueCredentialRequest struct {
	StudentID      int64           `json:"student_id" validate:"required,gt=0"`
	CredentialType string          `json:"credential_type" validate:"required,max=128"`
	Hash           string          `json:"credential_hash" validate:"omitempty,hexadecimal,len=64"`
	Issuer         string          `json:"issuer" validate:"max=256"`
	IssueDate      *time.Time      `json:"issue_date"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	TxID           string          `json:"blockchain_tx_id" validate:"max=256"`
	Metadata       json.RawMessage `json:"metadata"`
}
