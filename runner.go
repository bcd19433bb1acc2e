package diffbench

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultTrials is the number of measurements taken per unit per run. The
// minimum of the trials is kept: warm-up and scheduling jitter can only slow
// a trial down, so the minimum is the robust estimator for CPU-bound work.
const DefaultTrials = 3

// Runner owns an ordered collection of benchmark units and executes all of
// them against a workload. Units run concurrently, one goroutine per unit,
// with each unit's trials strictly sequential inside its goroutine. Results
// are collected in registration order regardless of completion order.
//
// Concurrency contract: the workload is shared read-only between the unit
// goroutines, and each goroutine writes exactly one index-owned result slot.
// Running units in parallel shortens total harness time and may slightly
// inflate absolute timings on a busy host; the harness prefers total run
// time over perfect isolation.
type Runner struct {
	units  []Unit
	trials int
	log    *logrus.Logger
}

// NewRunner creates a runner over the given units, measuring each
// DefaultTrials times per run. A nil logger falls back to a default logger.
func NewRunner(units []Unit, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
	}
	return &Runner{units: units, trials: DefaultTrials, log: log}
}

// SetTrials overrides the number of trials per unit.
func (r *Runner) SetTrials(n int) error {
	if n <= 0 {
		return fmt.Errorf("%d trials: %w", n, ErrNegativeTrials)
	}
	r.trials = n
	return nil
}

// Run measures every unit against the workload and returns the report in
// unit registration order. A failure in any unit's preparation or action
// aborts the whole run; there is no partial-results mode. A hung action
// blocks Run indefinitely, there is no timeout.
func (r *Runner) Run(w Workload) (*Report, error) {
	for _, u := range r.units {
		if err := u.validate(); err != nil {
			return nil, err
		}
	}

	outcomes := make([]time.Duration, len(r.units))
	filled := make([]bool, len(r.units))

	r.log.WithFields(logrus.Fields{
		"units":    len(r.units),
		"elements": len(w.Source),
		"trials":   r.trials,
	}).Info("starting benchmark run")

	var g errgroup.Group
	for i, u := range r.units {
		g.Go(func() error {
			best := time.Duration(-1)
			for trial := 0; trial < r.trials; trial++ {
				d, err := u.Measure(w)
				if err != nil {
					return err
				}
				r.log.WithFields(logrus.Fields{
					"unit":    u.Name,
					"trial":   trial,
					"elapsed": d,
				}).Debug("trial complete")
				if best < 0 || d < best {
					best = d
				}
			}
			// The slot at i belongs to this goroutine alone.
			outcomes[i] = best
			filled[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("slot %d (%q): %w", i, r.units[i].Name, ErrUnsetOutcome)
		}
	}

	report := &Report{
		Elements: len(w.Source),
		Deleted:  w.Delete.Len(),
		Inserted: w.Insert.Len(),
		Shuffled: w.Shuffle.Len(),
		Entries:  make([]Entry, len(r.units)),
	}
	for i, u := range r.units {
		report.Entries[i] = Entry{Name: u.Name, Best: outcomes[i]}
	}
	return report, nil
}
