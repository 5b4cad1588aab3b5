// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cache holds the in-process consensus result cache: a
// concurrency-safe map cleared wholesale on a fixed timer rather than per
// entry. Misses are never cached and entries are immutable once written.
package cache
