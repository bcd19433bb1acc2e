package diffbench

import (
	"fmt"
	"time"
)

// Action is the timed portion of a benchmark unit. It must be self-contained:
// it may not touch state that another concurrently running unit mutates.
type Action func() error

// Unit pairs a display name with a two-phase callable: Prepare performs any
// setup that must happen outside the timed window (data coercion, structure
// construction) and returns the Action to time.
type Unit struct {
	Name    string
	Prepare func(Workload) (Action, error)
}

func (u Unit) validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Prepare == nil {
		return fmt.Errorf("unit %q: %w", u.Name, ErrNilPrepare)
	}
	return nil
}

// Measure times exactly one execution of the unit's action against the
// workload. Preparation happens outside the timed window. Any error from
// Prepare or the Action propagates to the caller; the harness never converts
// a failed measurement into a timing.
func (u Unit) Measure(w Workload) (time.Duration, error) {
	action, err := u.Prepare(w)
	if err != nil {
		return 0, fmt.Errorf("preparing %q: %w", u.Name, err)
	}
	start := time.Now()
	err = action()
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("running %q: %w", u.Name, err)
	}
	return elapsed, nil
}
