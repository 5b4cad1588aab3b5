// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/hivemind-vote/hivemind/models"
)

// FindVotes returns the user's existing votes for the given tasks, keyed
// by task id. Tasks the user has not voted on are absent from the map.
func FindVotes(ctx context.Context, q Queryer, userID int64, taskIDs []int64) (map[int64]models.Vote, error) {
	votes := make(map[int64]models.Vote, len(taskIDs))
	if len(taskIDs) == 0 {
		return votes, nil
	}

	args := make([]interface{}, 0, len(taskIDs)+1)
	args = append(args, userID)
	for _, id := range taskIDs {
		args = append(args, id)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, user_id, task_id, answer_id FROM votes
		 WHERE user_id = $1 AND task_id IN (`+placeholders(2, len(taskIDs))+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.TaskID, &v.AnswerID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes[v.TaskID] = v
	}
	return votes, rows.Err()
}

// InsertVote inserts a vote row bound to the given answer. Returns false
// when a row for (user, task) already exists - the signal that a
// concurrent submission won the race and the caller should fall back to
// the rebind path.
func InsertVote(ctx context.Context, q Queryer, userID, taskID, answerID int64) (bool, error) {
	res, err := q.ExecContext(ctx,
		`INSERT INTO votes (user_id, task_id, answer_id) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, task_id) DO NOTHING`,
		userID, taskID, answerID)
	if err != nil {
		return false, fmt.Errorf("failed to insert vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n > 0, nil
}

// RebindVote points an existing vote row at a different answer. Tally
// bookkeeping is the caller's responsibility via AdjustAnswerVotes.
func RebindVote(ctx context.Context, q Queryer, voteID, answerID int64) error {
	_, err := q.ExecContext(ctx,
		`UPDATE votes SET answer_id = $1 WHERE id = $2`, answerID, voteID)
	if err != nil {
		return fmt.Errorf("failed to rebind vote: %w", err)
	}
	return nil
}
