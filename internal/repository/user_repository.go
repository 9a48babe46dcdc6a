package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

const userColumns = `user_id, username, email, password_hash, role, is_active, created_at`

// UserRepository provides database access for platform identities.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated identifier.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (username, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING user_id, created_at`
	row := r.db.QueryRowxContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role, user.Active)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return translate(err, "create user")
	}
	return nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translate(err, "find user by id")
	}
	return &user, nil
}

// FindActiveByUsername returns the active user with the exact username.
func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_active = TRUE`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, translate(err, "find user by username")
	}
	return &user, nil
}

// SetActive toggles the active flag. It reports whether a row was updated.
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	const query = `UPDATE users SET is_active = $2 WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return false, translate(err, "set user active")
	}
	return affected(res)
}

// Delete removes a user. Profiles and every dependent row go with it through
// ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, translate(err, "delete user")
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "rows affected")
	}
	return n > 0, nil
}
