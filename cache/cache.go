// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hivemind-vote/hivemind/models"
)

// Entry is one cached consensus result. Entries are immutable once
// stored: the flusher drops them wholesale, nothing updates them in place.
type Entry struct {
	Batched bool
	Results []*models.Consensus
}

// Cache is a process-wide map from task fingerprint to the last computed
// high-confidence consensus. Admission policy is the caller's concern;
// the cache itself never stores misses.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get returns the entry for a fingerprint, if present.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Put stores an entry. An existing entry for the same key is replaced.
func (c *Cache) Put(key string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = e
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartFlusher clears the cache on every tick until the returned stop
// function is called. A flush racing an in-flight read may keep or lose a
// single entry; it never blocks submissions.
func (c *Cache) StartFlusher(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				n := c.Len()
				c.Flush()
				slog.Info("consensus cache flushed", "entries", n)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
