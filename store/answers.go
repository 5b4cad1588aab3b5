// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hivemind-vote/hivemind/models"
)

// AnswerKey identifies one answer row by its unique constraint.
type AnswerKey struct {
	TaskID int64
	Text   string
}

// FindAnswers bulk-resolves (task, answer text) pairs to answer rows.
// Missing pairs are absent from the returned map.
func FindAnswers(ctx context.Context, q Queryer, keys []AnswerKey) (map[AnswerKey]models.Answer, error) {
	found := make(map[AnswerKey]models.Answer, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	var where strings.Builder
	args := make([]interface{}, 0, len(keys)*2)
	for i, k := range keys {
		if i > 0 {
			where.WriteString(" OR ")
		}
		where.WriteString("(task_id = $" + strconv.Itoa(len(args)+1) +
			" AND answer = $" + strconv.Itoa(len(args)+2) + ")")
		args = append(args, k.TaskID, k.Text)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, task_id, answer, votes FROM answers WHERE `+where.String(),
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Answer, &a.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		found[AnswerKey{TaskID: a.TaskID, Text: a.Answer}] = a
	}
	return found, rows.Err()
}

// CreateAnswers bulk-inserts answer rows with a zero tally. Pairs that
// already exist are skipped via the (task_id, answer) unique constraint.
func CreateAnswers(ctx context.Context, q Queryer, keys []AnswerKey) error {
	if len(keys) == 0 {
		return nil
	}

	var values strings.Builder
	args := make([]interface{}, 0, len(keys)*2)
	for i, k := range keys {
		if i > 0 {
			values.WriteByte(',')
		}
		values.WriteString("($" + strconv.Itoa(len(args)+1) +
			",$" + strconv.Itoa(len(args)+2) + ")")
		args = append(args, k.TaskID, k.Text)
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO answers (task_id, answer) VALUES `+values.String()+
			` ON CONFLICT (task_id, answer) DO NOTHING`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to insert answers: %w", err)
	}
	return nil
}

// ResolveAnswers finds or creates every answer row for the given pairs and
// returns the complete mapping.
func ResolveAnswers(ctx context.Context, q Queryer, keys []AnswerKey) (map[AnswerKey]models.Answer, error) {
	found, err := FindAnswers(ctx, q, keys)
	if err != nil {
		return nil, err
	}

	var missing []AnswerKey
	for _, k := range keys {
		if _, ok := found[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return found, nil
	}

	if err := CreateAnswers(ctx, q, missing); err != nil {
		return nil, err
	}

	created, err := FindAnswers(ctx, q, missing)
	if err != nil {
		return nil, err
	}
	for k, a := range created {
		found[k] = a
	}
	return found, nil
}

// AnswersForTask returns every answer for a task ordered by tally,
// highest first. The order of equal tallies is whatever the store
// returns and is not guaranteed stable across calls.
func AnswersForTask(ctx context.Context, q Queryer, taskID int64) ([]models.Answer, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, task_id, answer, votes FROM answers WHERE task_id = $1 ORDER BY votes DESC`,
		taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Answer, &a.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// AdjustAnswerVotes applies a batch of tally deltas in a single
// conditional UPDATE. One statement for the whole batch keeps the
// tally-equals-live-votes invariant intact even when the surrounding
// transaction aborts midway. Zero deltas are dropped; an all-zero batch
// is a no-op.
func AdjustAnswerVotes(ctx context.Context, q Queryer, deltas map[int64]int) error {
	ids := make([]int64, 0, len(deltas))
	for id, d := range deltas {
		if d != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var caseExpr strings.Builder
	args := make([]interface{}, 0, len(ids)*3)
	caseExpr.WriteString("CASE id")
	for _, id := range ids {
		caseExpr.WriteString(" WHEN $" + strconv.Itoa(len(args)+1) +
			" THEN $" + strconv.Itoa(len(args)+2))
		args = append(args, id, deltas[id])
	}
	caseExpr.WriteString(" ELSE 0 END")

	inStart := len(args) + 1
	for _, id := range ids {
		args = append(args, id)
	}

	_, err := q.ExecContext(ctx,
		`UPDATE answers SET votes = votes + `+caseExpr.String()+
			` WHERE id IN (`+placeholders(inStart, len(ids))+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to adjust answer votes: %w", err)
	}
	return nil
}
