// Package difflib adapts the go-difflib sequence matcher as a benchmark
// subject. The matcher implements a Ratcliff-Obershelp style longest
// contiguous matching block strategy; the harness treats it as a black box
// and only counts the edits it produces. Registered as "difflib".
package difflib

import (
	godifflib "github.com/pmezard/go-difflib/difflib"

	"github.com/arran4/diffbench/algo"
)

func init() {
	algo.Register("difflib", Diff)
}

// Diff counts the elements touched by non-equal opcodes of the sequence
// matcher: deleted and replaced elements of old plus inserted and replacing
// elements of new.
func Diff(old, new []string) (int, error) {
	matcher := godifflib.NewMatcher(old, new)
	changes := 0
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		changes += (op.I2 - op.I1) + (op.J2 - op.J1)
	}
	return changes, nil
}
