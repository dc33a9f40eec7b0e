package identity

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// UsernamePrefixLookup returns every stored username that matches the given
// prefix, case-insensitively. The Users repository satisfies this; tests
// substitute a closure.
type UsernamePrefixLookup func(ctx context.Context, prefix string) ([]string, error)

// DeriveUsername builds the canonical base username from a person's name and
// a reference date: first initial of the trimmed first name, the last name
// with all whitespace removed, then MMYY of the reference date (now when
// omitted). The result is lowercased. Pure, no failure mode: empty inputs
// yield a degenerate but well formed handle.
func DeriveUsername(firstName, lastName string, ref ...time.Time) string {
	at := time.Now()
	if len(ref) > 0 {
		at = ref[0]
	}

	initial := ""
	if trimmed := strings.TrimSpace(firstName); trimmed != "" {
		initial = string([]rune(trimmed)[0])
	}

	last := strings.Join(strings.Fields(lastName), "")

	stamp := fmt.Sprintf("%02d%02d", int(at.Month()), at.Year()%100)

	return strings.ToLower(initial + last + stamp)
}

// EnsureUniqueUsername returns a username guaranteed absent from the snapshot
// the lookup observes. If the lookup fails or finds nothing, desired is
// returned unchanged. Otherwise suffixes desired-2, desired-3, ... are probed
// until one is free. The guarantee holds only against the snapshot, not
// against concurrent allocation of the same base name.
func EnsureUniqueUsername(ctx context.Context, desired string, lookup UsernamePrefixLookup) string {
	existing, err := lookup(ctx, desired)
	if err != nil || len(existing) == 0 {
		return desired
	}

	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[strings.ToLower(name)] = struct{}{}
	}

	if _, ok := taken[strings.ToLower(desired)]; !ok {
		return desired
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", desired, n)
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
	}
}
