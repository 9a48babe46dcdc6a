package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DemoUser is an account inserted by SeedDemoUsers.
type DemoUser struct {
	Username string
	Email    string
	Role     string
}

// DemoUsers are the accounts available in a freshly seeded database.
var DemoUsers = []DemoUser{
	{Username: "student1", Email: "student1@demo.com", Role: "student"},
	{Username: "college1", Email: "college1@demo.com", Role: "college_admin"},
	{Username: "recruiter1", Email: "recruiter1@demo.com", Role: "recruiter"},
}

const seedUserQuery = `INSERT INTO users (username, email, password_hash, role)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT DO NOTHING`

// SeedDemoUsers inserts DemoUsers sharing passwordHash and returns how many
// were new. Existing accounts are left untouched.
func SeedDemoUsers(ctx context.Context, db *sqlx.DB, passwordHash string) (inserted int64, err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, u := range DemoUsers {
		res, execErr := tx.ExecContext(ctx, seedUserQuery, u.Username, u.Email, passwordHash, u.Role)
		if execErr != nil {
			err = fmt.Errorf("seed user %s: %w", u.Username, execErr)
			return 0, err
		}
		n, _ := res.RowsAffected()
		inserted += n
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return inserted, nil
}
