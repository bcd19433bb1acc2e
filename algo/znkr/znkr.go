// Package znkr adapts znkr.io/diff as a benchmark subject. The library
// computes a Myers-style diff over generic slices with heuristics for large
// inputs; the harness treats it as a black box and only counts the edits it
// produces. Registered as "znkr".
package znkr

import (
	"znkr.io/diff"

	"github.com/arran4/diffbench/algo"
)

func init() {
	algo.Register("znkr", Diff)
}

// Diff counts the non-match edits transforming old into new.
func Diff(old, new []string) (int, error) {
	changes := 0
	for _, edit := range diff.Edits(old, new) {
		if edit.Op != diff.Match {
			changes++
		}
	}
	return changes, nil
}
