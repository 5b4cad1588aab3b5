package consensus

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hivemind-vote/hivemind/testutil"
)

// TestConcurrentSubmissionsSameUser verifies that simultaneous submissions
// by one user on one task never produce a second vote row or a drifting
// tally.
func TestConcurrentSubmissionsSameUser(t *testing.T) {
	e, conn, _ := newTestEngine(t)

	answers := []string{`"A"`, `"B"`, `"C"`, `"A"`, `"B"`}
	var wg sync.WaitGroup
	var failures atomic.Int32

	for _, answer := range answers {
		wg.Add(1)
		go func(answer string) {
			defer wg.Done()
			if err := e.Submit(context.Background(), task("t1", answer), user("u1", "")); err != nil {
				failures.Add(1)
			}
		}(answer)
	}
	wg.Wait()

	if failures.Load() > 0 {
		t.Errorf("%d submissions failed", failures.Load())
	}

	if n := testutil.QueryInt(t, conn, `SELECT COUNT(*) FROM votes`); n != 1 {
		t.Errorf("expected exactly one vote row, got %d", n)
	}
	if n := testutil.QueryInt(t, conn, `SELECT COALESCE(SUM(votes), 0) FROM answers`); n != 1 {
		t.Errorf("expected total tally 1, got %d", n)
	}
	if n := testutil.QueryInt(t, conn, `SELECT votes FROM users WHERE azonosito = 'u1'`); n != 1 {
		t.Errorf("expected cumulative counter 1, got %d", n)
	}
}

// TestConcurrentSubmissionsDistinctUsers verifies the tally adjustment is
// a genuine atomic increment: N users racing onto the same answer must
// land on exactly N.
func TestConcurrentSubmissionsDistinctUsers(t *testing.T) {
	e, conn, _ := newTestEngine(t)

	numUsers := 10
	var wg sync.WaitGroup
	var failures atomic.Int32

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			u := user("u"+strconv.Itoa(n), "")
			if err := e.Submit(context.Background(), task("t1", `"A"`), u); err != nil {
				failures.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if failures.Load() > 0 {
		t.Errorf("%d submissions failed", failures.Load())
	}

	if n := testutil.QueryInt(t, conn, `SELECT votes FROM answers WHERE answer = 'A'`); n != numUsers {
		t.Errorf("expected tally %d, got %d", numUsers, n)
	}
	if n := testutil.QueryInt(t, conn, `SELECT COUNT(*) FROM votes`); n != numUsers {
		t.Errorf("expected %d vote rows, got %d", numUsers, n)
	}
	if n := testutil.QueryInt(t, conn, `SELECT COUNT(*) FROM tasks`); n != 1 {
		t.Errorf("identical content must resolve to one task row, got %d", n)
	}
}
