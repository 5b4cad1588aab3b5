// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hivemind-vote/hivemind/models"
)

// InsertAnnouncement persists one admin broadcast entry.
func InsertAnnouncement(ctx context.Context, q Queryer, a models.Announcement) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO announcements (id, title, content, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Title, a.Content, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

// ListAnnouncementsSince returns entries created strictly after the given
// time, oldest first. A zero time returns everything.
func ListAnnouncementsSince(ctx context.Context, q Queryer, since time.Time) ([]models.Announcement, error) {
	query := `SELECT id, title, content, created_at FROM announcements ORDER BY created_at ASC`
	args := []interface{}{}
	if !since.IsZero() {
		query = `SELECT id, title, content, created_at FROM announcements
		         WHERE created_at > $1 ORDER BY created_at ASC`
		args = append(args, since.UTC())
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	list := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
