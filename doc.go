// Package diffbench is a micro-benchmark harness for diff algorithms.
//
// The harness treats each algorithm as an opaque unit of work: a Unit pairs a
// display name with a Prepare function that, given a Workload, returns the
// Action to be timed. The harness generates reproducible workloads, runs every
// unit's trials concurrently, keeps the minimum of three trials per unit, and
// renders an aligned comparison table.
//
// Example usage:
//
//	w, err := diffbench.Generate(diffbench.Config{
//		Count:   10000,
//		Delete:  diffbench.Range{Start: 0, End: 1000},
//		Insert:  diffbench.Range{Start: 0, End: 1000},
//		Shuffle: diffbench.Range{Start: 0, End: 100},
//		Seed:    1,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	runner := diffbench.NewRunner(units, nil)
//	report, err := runner.Run(w)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(report.String())
//
// The harness does not validate diff output, compare memory usage, or persist
// results; units are supplied statically before a run starts.
package diffbench
