package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arran4/diffbench"
	"github.com/arran4/diffbench/algo"
)

// UnitsFor builds benchmark units for the named registered algorithms,
// preserving the given order. Preparation captures the workload's element
// slices so the timed action is a bare algorithm invocation.
func UnitsFor(names []string) ([]diffbench.Unit, error) {
	units := make([]diffbench.Unit, 0, len(names))
	for _, name := range names {
		fn, err := algo.Get(name)
		if err != nil {
			return nil, err
		}
		units = append(units, diffbench.Unit{
			Name: name,
			Prepare: func(w diffbench.Workload) (diffbench.Action, error) {
				old, new := w.Source, w.Target
				return func() error {
					_, err := fn(old, new)
					return err
				}, nil
			},
		})
	}
	return units, nil
}

// Bench runs one benchmark per workload tuple and writes each report to out
// as soon as its run completes, so earlier reports survive a later failure.
// An empty names list selects every registered algorithm.
func Bench(out io.Writer, log *logrus.Logger, configs []diffbench.Config, names []string, trials int) error {
	if len(names) == 0 {
		names = algo.Names()
	}
	units, err := UnitsFor(names)
	if err != nil {
		return err
	}

	runner := diffbench.NewRunner(units, log)
	if trials > 0 {
		if err := runner.SetTrials(trials); err != nil {
			return err
		}
	}

	for _, cfg := range configs {
		w, err := diffbench.Generate(cfg)
		if err != nil {
			return fmt.Errorf("generating workload: %w", err)
		}
		report, err := runner.Run(w)
		if err != nil {
			return err
		}
		if err := report.Render(out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

// List prints the registered algorithm names, one per line.
func List(out io.Writer) error {
	for _, name := range algo.Names() {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
