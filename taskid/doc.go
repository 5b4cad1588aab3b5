// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package taskid derives stable task identifiers from client-supplied
// content and parses solution payloads into ordered sub-answer sequences.
// The hashing primitive is isolated here so it can be swapped without
// touching callers.
package taskid
