// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the access layer for the relational backend and the only
legal mutation path to the tasks, answers, users, votes, and announcements
tables. No other code may write vote rows or tallies.

Every function takes a Queryer, satisfied by both *sql.DB and *sql.Tx, so
callers choose the transaction boundary:

	err := store.InTx(ctx, db, func(q store.Queryer) error {
		ids, err := store.ResolveTaskIDs(ctx, q, hashes)
		...
	})

# Batching

The bulk operations (ResolveTaskIDs, ResolveAnswers, FindVotes,
AdjustAnswerVotes) each issue a constant number of statements regardless of
batch size. AdjustAnswerVotes in particular applies every tally delta in
one conditional CASE update so a batch can never be half-applied.

# Conflict handling

Inserts that can race rely on unique constraints with ON CONFLICT DO
NOTHING rather than select-then-insert. InsertVote reports whether the row
was actually inserted; callers treat "not inserted" as "a concurrent
submission got there first" and switch to the fetch-and-rebind path.
*/
package store
