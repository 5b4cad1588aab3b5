// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hivemind-vote/hivemind/cache"
	"github.com/hivemind-vote/hivemind/models"
	"github.com/hivemind-vote/hivemind/store"
	"github.com/hivemind-vote/hivemind/taskid"
)

// Cache admission threshold: near-unanimous with limited participation.
// Anything contested or small-sample stays uncached because it is likely
// to change.
const (
	cacheMinVotes      = 9
	cacheMaxTotalVotes = 10
)

// Engine resolves tasks to their current consensus and reconciles
// incoming votes against the one-vote-per-user-per-task invariant.
type Engine struct {
	db    *sql.DB
	cache *cache.Cache
}

func New(db *sql.DB, c *cache.Cache) *Engine {
	return &Engine{db: db, cache: c}
}

// identify computes the persisted sub-task hashes for a request. Batched
// submissions (JSON array solutions) expand into one sub-task per part;
// everything else resolves to the bare fingerprint.
func identify(task models.TaskRequest) (base string, hashes, parts []string, batched bool) {
	base = taskid.Fingerprint(task.ID)
	parts, batched = taskid.ParseSolution(task.Solution)
	if batched {
		hashes = taskid.SubIDs(base, len(parts))
	} else {
		hashes = []string{base}
	}
	return base, hashes, parts, batched
}

// Resolve returns the current best answer for each sub-task of the
// request: the top-voted answer, its tally, and the summed tally of every
// answer on that sub-task. A sub-task nobody has answered yields nil at
// its position, never an error. batched reports whether the result is the
// multi-part shape.
func (e *Engine) Resolve(ctx context.Context, task models.TaskRequest) (results []*models.Consensus, batched bool, err error) {
	if task.ID == "" {
		return nil, false, errMissing("task id")
	}

	base, hashes, _, batched := identify(task)

	if entry, ok := e.cache.Get(base); ok {
		return entry.Results, entry.Batched, nil
	}

	ids, err := store.FindTaskIDs(ctx, e.db, hashes)
	if err != nil {
		return nil, false, err
	}

	results = make([]*models.Consensus, len(hashes))
	for i, h := range hashes {
		taskID, ok := ids[h]
		if !ok {
			continue
		}

		answers, err := store.AnswersForTask(ctx, e.db, taskID)
		if err != nil {
			return nil, false, err
		}
		if len(answers) == 0 {
			continue
		}

		total := 0
		for _, a := range answers {
			total += a.Votes
		}
		// answers come back ordered by tally; ties resolve to whichever
		// row the store returned first.
		results[i] = &models.Consensus{
			Answer:     answers[0].Answer,
			Votes:      answers[0].Votes,
			TotalVotes: total,
		}
	}

	if admissible(results) {
		e.cache.Put(base, cache.Entry{Batched: batched, Results: results})
	}

	return results, batched, nil
}

// admissible applies the cache confidence gate: every position resolved,
// and every result near-unanimous with limited total participation.
// Partial batched results are never cached.
func admissible(results []*models.Consensus) bool {
	for _, r := range results {
		if r == nil {
			return false
		}
		if r.Votes < cacheMinVotes || r.TotalVotes > cacheMaxTotalVotes {
			return false
		}
	}
	return len(results) > 0
}

// Submit records the user's current endorsement of the submitted solution
// for every sub-task of the request. A first vote on a sub-task inserts a
// vote row and bumps the answer tally; a changed vote migrates the
// existing row, decrementing the old answer and incrementing the new one;
// resubmitting the same answer is a no-op. The user's cumulative counter
// grows by one only when the submission contains their first vote on the
// task.
//
// All vote and tally writes run in one transaction; a store failure leaves
// no partial effect.
func (e *Engine) Submit(ctx context.Context, task models.TaskRequest, user models.UserRequest) error {
	if task.ID == "" {
		return errMissing("task id")
	}
	if user.Azonosito == "" {
		return errMissing("user azonosito")
	}
	_, hashes, parts, _ := identify(task)
	if len(parts) == 0 {
		return errMissing("solution")
	}

	userID, err := e.resolveUser(ctx, user)
	if err != nil {
		return err
	}

	return store.InTx(ctx, e.db, func(q store.Queryer) error {
		taskIDs, err := store.ResolveTaskIDs(ctx, q, hashes)
		if err != nil {
			return err
		}

		keys := make([]store.AnswerKey, len(parts))
		orderedTasks := make([]int64, len(parts))
		for i, part := range parts {
			orderedTasks[i] = taskIDs[hashes[i]]
			keys[i] = store.AnswerKey{TaskID: orderedTasks[i], Text: part}
		}

		answers, err := store.ResolveAnswers(ctx, q, keys)
		if err != nil {
			return err
		}

		votes, err := store.FindVotes(ctx, q, userID, orderedTasks)
		if err != nil {
			return err
		}

		deltas := make(map[int64]int)
		newVotes := 0
		for i := range parts {
			taskID := orderedTasks[i]
			answer, ok := answers[keys[i]]
			if !ok {
				return fmt.Errorf("answer row missing for task %d", taskID)
			}

			existing, voted := votes[taskID]
			if !voted {
				inserted, err := store.InsertVote(ctx, q, userID, taskID, answer.ID)
				if err != nil {
					return err
				}
				if inserted {
					deltas[answer.ID]++
					newVotes++
					continue
				}
				// Lost the insert race: a concurrent submission created
				// the row first. Re-fetch and fall through to the rebind
				// path.
				refetched, err := store.FindVotes(ctx, q, userID, []int64{taskID})
				if err != nil {
					return err
				}
				var ok bool
				existing, ok = refetched[taskID]
				if !ok {
					return fmt.Errorf("vote row for task %d vanished after conflict", taskID)
				}
			}

			if existing.AnswerID != answer.ID {
				if err := store.RebindVote(ctx, q, existing.ID, answer.ID); err != nil {
					return err
				}
				deltas[existing.AnswerID]--
				deltas[answer.ID]++
			}
		}

		if err := store.AdjustAnswerVotes(ctx, q, deltas); err != nil {
			return err
		}
		if newVotes > 0 {
			if err := store.AddUserVotes(ctx, q, userID, 1); err != nil {
				return err
			}
		}
		return nil
	})
}

// resolveUser finds or lazily creates the user and applies a display-name
// change. Runs before (not inside) the vote transaction; user identity
// must exist whether or not the vote write succeeds.
func (e *Engine) resolveUser(ctx context.Context, user models.UserRequest) (int64, error) {
	u, err := store.FindUserByExternalID(ctx, e.db, user.Azonosito)
	if err != nil {
		return 0, err
	}
	if u == nil {
		id, err := store.CreateUser(ctx, e.db, user.Azonosito, user.Name)
		if err == nil {
			return id, nil
		}
		// A concurrent submission may have created the user between our
		// lookup and insert; the unique constraint turns that race into
		// an error we resolve by re-fetching.
		u, ferr := store.FindUserByExternalID(ctx, e.db, user.Azonosito)
		if ferr != nil || u == nil {
			return 0, err
		}
		return u.ID, nil
	}

	if user.Name != "" && user.Name != u.Name {
		if err := store.RenameUser(ctx, e.db, u.ID, user.Name); err != nil {
			return 0, err
		}
	}
	return u.ID, nil
}
