package taskid

import (
	"encoding/json"
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("matek-feladat-12")
	b := Fingerprint("matek-feladat-12")
	if a != b {
		t.Errorf("same content produced different fingerprints: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestFingerprint_DistinctContent(t *testing.T) {
	if Fingerprint("task-a") == Fingerprint("task-b") {
		t.Error("distinct content produced identical fingerprints")
	}
}

func TestSubIDs(t *testing.T) {
	ids := SubIDs("abc", 3)
	want := []string{"abc_0", "abc_1", "abc_2"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d: expected %q, got %q", i, want[i], ids[i])
		}
	}
}

func TestParseSolution(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		parts   []string
		batched bool
	}{
		{"scalar string", `"A"`, []string{"A"}, false},
		{"scalar number", `42`, []string{"42"}, false},
		{"list", `["A","B","C"]`, []string{"A", "B", "C"}, true},
		{"one-element list", `["A"]`, []string{"A"}, true},
		{"mixed list", `["A", 2, true]`, []string{"A", "2", "true"}, true},
		{"malformed json", `not-json`, []string{"not-json"}, false},
		{"object degrades to single", `{"a":1}`, []string{`{"a":1}`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, batched := ParseSolution(json.RawMessage(tt.raw))
			if batched != tt.batched {
				t.Errorf("batched: expected %v, got %v", tt.batched, batched)
			}
			if len(parts) != len(tt.parts) {
				t.Fatalf("expected %d parts, got %d (%v)", len(tt.parts), len(parts), parts)
			}
			for i := range tt.parts {
				if parts[i] != tt.parts[i] {
					t.Errorf("part %d: expected %q, got %q", i, tt.parts[i], parts[i])
				}
			}
		})
	}
}

func TestParseSolution_Empty(t *testing.T) {
	parts, batched := ParseSolution(nil)
	if parts != nil || batched {
		t.Errorf("expected nil, false for empty payload, got %v, %v", parts, batched)
	}
}
