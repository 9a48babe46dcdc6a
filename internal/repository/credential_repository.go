package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

const credentialColumns = `credential_id, student_id, credential_type, credential_hash, issuer, issue_date, expiration_date, verified, blockchain_tx_id, metadata`

// CredentialRepository stores student credentials.
type CredentialRepository struct {
	db *sqlx.DB
}

// NewCredentialRepository constructs a CredentialRepository.
func NewCredentialRepository(db *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a credential record.
func (r *CredentialRepository) Create(ctx context.Context, c *models.Credential) error {
	const query = `INSERT INTO blockchain_credentials (student_id, credential_type, credential_hash, issuer, issue_date, expiration_date, blockchain_tx_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING credential_id, verified`
	row := r.db.QueryRowxContext(ctx, query,
		c.StudentID, c.CredentialType, c.CredentialHash, c.Issuer, c.IssueDate, c.ExpirationDate, c.TxID, c.Metadata,
	)
	if err := row.Scan(&c.ID, &c.Verified); err != nil {
		return translate(err, "create credential")
	}
	return nil
}

// MarkVerified flags the credential with the given hash as verified and
// returns the updated record.
func (r *CredentialRepository) MarkVerified(ctx context.Context, hash string) (*models.Credential, error) {
	const query = `UPDATE blockchain_credentials SET verified = TRUE WHERE credential_hash = $1 RETURNING ` + credentialColumns
	var c models.Credential
	if err := r.db.GetContext(ctx, &c, query, hash); err != nil {
		return nil, translate(err, "verify credential")
	}
	return &c, nil
}

// ListByStudent returns a student's credentials.
func (r *CredentialRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Credential, error) {
	const query = `SELECT ` + credentialColumns + ` FROM blockchain_credentials WHERE student_id = $1 ORDER BY credential_id DESC`
	var creds []models.Credential
	if err := r.db.SelectContext(ctx, &creds, query, studentID); err != nil {
		return nil, translate(err, "list credentials")
	}
	return creds, nil
}
