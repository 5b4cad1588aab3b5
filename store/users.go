// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hivemind-vote/hivemind/models"
)

// FindUserByExternalID looks a user up by the opaque client-supplied
// identifier. Returns nil with no error when the user does not exist.
func FindUserByExternalID(ctx context.Context, q Queryer, azonosito string) (*models.User, error) {
	var u models.User
	var name sql.NullString
	err := q.QueryRowContext(ctx,
		`SELECT id, azonosito, name, votes FROM users WHERE azonosito = $1`,
		azonosito).Scan(&u.ID, &u.Azonosito, &name, &u.Votes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	u.Name = name.String
	return &u, nil
}

// CreateUser inserts a user row and returns its id.
func CreateUser(ctx context.Context, q Queryer, azonosito, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO users (azonosito, name) VALUES ($1, $2) RETURNING id`,
		azonosito, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// RenameUser updates the display name in place.
func RenameUser(ctx context.Context, q Queryer, userID int64, name string) error {
	_, err := q.ExecContext(ctx,
		`UPDATE users SET name = $1 WHERE id = $2`, name, userID)
	if err != nil {
		return fmt.Errorf("failed to rename user: %w", err)
	}
	return nil
}

// AddUserVotes bumps the cumulative first-vote counter. The increment runs
// in SQL so concurrent submissions never lose an update.
func AddUserVotes(ctx context.Context, q Queryer, userID int64, delta int) error {
	if delta == 0 {
		return nil
	}
	_, err := q.ExecContext(ctx,
		`UPDATE users SET votes = votes + $1 WHERE id = $2`, delta, userID)
	if err != nil {
		return fmt.Errorf("failed to update user votes: %w", err)
	}
	return nil
}

// ListUsersByVotes returns the leaderboard: every user's display name and
// cumulative vote count, highest first.
func ListUsersByVotes(ctx context.Context, q Queryer) ([]models.UserRank, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT COALESCE(name, ''), votes FROM users ORDER BY votes DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	ranks := []models.UserRank{}
	for rows.Next() {
		var r models.UserRank
		if err := rows.Scan(&r.Name, &r.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		ranks = append(ranks, r)
	}
	return ranks, rows.Err()
}
