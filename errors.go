package diffbench

import "errors"

var (
	ErrEmptyName      = errors.New("empty unit name")
	ErrNilPrepare     = errors.New("nil prepare function")
	ErrInvalidRange   = errors.New("invalid range")
	ErrUnsetOutcome   = errors.New("internal invariant violated: outcome slot unset after join")
	ErrNegativeCount  = errors.New("negative element count")
	ErrNegativeTrials = errors.New("trial count must be positive")
)
