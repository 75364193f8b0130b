package db

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Seed inserts a pair of sample users and a handful of certificates so a
// fresh database is immediately usable. It is a no-op when users already
// exist.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	users := []struct {
		email    string
		name     string
		password string
	}{
		{"test1@mail.com", "name1", "password1"},
		{"test2@mail.com", "name2", "password2"},
	}

	ownerIDs := make([]int64, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		var id int64
		err = tx.QueryRowContext(ctx, `
			INSERT INTO users (email, name, password) VALUES ($1, $2, $3) RETURNING id
		`, u.email, u.name, string(hash)).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert seed user: %w", err)
		}
		ownerIDs = append(ownerIDs, id)
	}

	certificates := []struct {
		country string
		status  string
		owner   *int64
	}{
		{"France", "owned", &ownerIDs[0]},
		{"England", "owned", &ownerIDs[1]},
		{"Spain", "available", nil},
	}

	for _, c := range certificates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO carbon_certificates (country, status, owner_id) VALUES ($1, $2, $3)
		`, c.country, c.status, c.owner)
		if err != nil {
			return fmt.Errorf("insert seed certificate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
