package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/hivemind-vote/hivemind/models"
)

func TestPutGet(t *testing.T) {
	c := New()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	entry := Entry{Results: []*models.Consensus{{Answer: "A", Votes: 9, TotalVotes: 9}}}
	c.Put("k1", entry)

	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got.Results[0].Answer != "A" {
		t.Errorf("expected answer A, got %q", got.Results[0].Answer)
	}
}

func TestFlush(t *testing.T) {
	c := New()
	c.Put("k1", Entry{})
	c.Put("k2", Entry{})

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}

	c.Flush()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after flush, got %d entries", c.Len())
	}
}

func TestFlusher(t *testing.T) {
	c := New()
	c.Put("k1", Entry{})

	stop := c.StartFlusher(10 * time.Millisecond)
	defer stop()

	deadline := time.After(2 * time.Second)
	for c.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("flusher did not clear the cache in time")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// TestConcurrentAccess exercises reads, writes, and flushes in parallel;
// run with -race.
func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "k" + strconv.Itoa(n%4)
			for j := 0; j < 200; j++ {
				c.Put(key, Entry{Results: []*models.Consensus{{Answer: "A"}}})
				c.Get(key)
				if j%50 == 0 {
					c.Flush()
				}
			}
		}(i)
	}

	wg.Wait()
}
