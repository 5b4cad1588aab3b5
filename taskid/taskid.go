// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package taskid

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// Fingerprint derives the stable identifier for a task from its
// client-supplied identity content. Pure and deterministic: the same
// content always maps to the same task row across restarts.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// SubIDs expands a base fingerprint into n sub-task identifiers for a
// batched submission, one per sub-answer position.
func SubIDs(base string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = base + "_" + strconv.Itoa(i)
	}
	return ids
}

// ParseSolution turns the raw solution payload into an ordered sequence of
// sub-answers. A JSON array yields one part per element and batched=true
// (a one-element array is still batched). A JSON scalar yields a single
// part. Anything unparseable degrades to a single part holding the raw
// text; parsing never fails.
func ParseSolution(raw json.RawMessage) (parts []string, batched bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{string(raw)}, false
	}

	switch vv := v.(type) {
	case []interface{}:
		parts = make([]string, len(vv))
		for i, elem := range vv {
			parts[i] = stringify(elem)
		}
		return parts, true
	default:
		return []string{stringify(v)}, false
	}
}

// stringify renders a decoded JSON value as answer text. Strings pass
// through untouched; everything else is re-encoded as compact JSON so that
// numeric answers compare equal regardless of client formatting.
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
