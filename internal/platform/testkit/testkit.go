// Package testkit provides testing helpers shared by the gsa packages
package testkit

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

// MustNotPanic fails the test when fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails the test unless haystack contains needle; long haystacks
// are cut so log captures stay readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > 2048 {
		shown = shown[:2048] + "..."
	}
	t.Fatalf("missing %q in:\n%s", needle, shown)
}

// Data decodes the data member of an API envelope into T
func Data[T any](t *testing.T, body []byte) T {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	var out T
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, body)
	}
	if len(env.Data) == 0 {
		t.Fatalf("envelope has no data: %s", body)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v data=%s", err, env.Data)
	}
	return out
}

// seams guards package level variables replaced by Swap
var seams sync.Mutex

// Swap points target at replacement until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	t.Cleanup(func() { *target = prev })
	*target = replacement
}

// Serial holds a process wide lock for the rest of the test so tests that
// Swap the same seams never overlap
func Serial(t *testing.T) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}
