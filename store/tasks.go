// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// FindTaskIDs bulk-resolves task hashes to row ids. Hashes with no row are
// simply absent from the returned map; a missing task is not an error.
func FindTaskIDs(ctx context.Context, q Queryer, hashes []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(hashes))
	if len(hashes) == 0 {
		return ids, nil
	}

	args := make([]interface{}, len(hashes))
	for i, h := range hashes {
		args[i] = h
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, task_hash FROM tasks WHERE task_hash IN (`+placeholders(1, len(hashes))+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var hash string
		if err := rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		ids[hash] = id
	}
	return ids, rows.Err()
}

// CreateTasks bulk-inserts task rows for the given hashes. Hashes that
// already exist are skipped; the unique constraint on task_hash guarantees
// concurrent creators converge on a single row.
func CreateTasks(ctx context.Context, q Queryer, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}

	var values strings.Builder
	args := make([]interface{}, 0, len(hashes))
	for i, h := range hashes {
		if i > 0 {
			values.WriteByte(',')
		}
		values.WriteString("($" + strconv.Itoa(i+1) + ")")
		args = append(args, h)
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO tasks (task_hash) VALUES `+values.String()+` ON CONFLICT (task_hash) DO NOTHING`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to insert tasks: %w", err)
	}
	return nil
}

// ResolveTaskIDs finds or creates every task row for the given hashes and
// returns the complete hash -> id mapping. Two round trips in the common
// case: bulk-select existing, bulk-insert missing, re-select to pick up
// generated ids.
func ResolveTaskIDs(ctx context.Context, q Queryer, hashes []string) (map[string]int64, error) {
	ids, err := FindTaskIDs(ctx, q, hashes)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, h := range hashes {
		if _, ok := ids[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) == 0 {
		return ids, nil
	}

	if err := CreateTasks(ctx, q, missing); err != nil {
		return nil, err
	}

	created, err := FindTaskIDs(ctx, q, missing)
	if err != nil {
		return nil, err
	}
	for h, id := range created {
		ids[h] = id
	}
	return ids, nil
}
