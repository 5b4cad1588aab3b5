// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package consensus implements the vote-consolidation and
consensus-resolution engine.

# Invariants

  - A user holds at most one live vote per task; changing their answer
    migrates the existing vote row instead of creating a second one.
  - An answer's tally always equals the number of live votes referencing
    it; tally deltas are applied as one batched SQL update inside the same
    transaction as the vote writes.
  - A user's cumulative counter counts distinct tasks they have ever voted
    on - changing a vote never increments it.

# Read path

Resolve fingerprints the task, consults the in-process cache, and
otherwise computes the top-voted answer plus total participation per
sub-task. Results are only admitted to the cache when near-unanimous
(votes >= 9 with at most 10 total) and fully resolved.

# Concurrency

Races are converted into unique-constraint conflicts rather than checked
in application code: a losing vote insert falls back to fetch-and-rebind,
and a losing user insert re-fetches the winner's row.
*/
package consensus
