// diffbench benchmarks registered diff algorithms against generated
// workloads and prints a comparison table per workload.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arran4/diffbench"
	"github.com/arran4/diffbench/internal/cli"

	// Registered diff algorithms.
	_ "github.com/arran4/diffbench/algo/difflib"
	_ "github.com/arran4/diffbench/algo/hashmatch"
	_ "github.com/arran4/diffbench/algo/heckel"
	_ "github.com/arran4/diffbench/algo/znkr"
)

// defaultWorkloads is the ladder used when no workload tuples are given.
var defaultWorkloads = []string{
	"count=1000,delete=0:100,insert=0:100,shuffle=0:10",
	"count=10000,delete=0:1000,insert=0:1000,shuffle=0:100",
	"count=100000,delete=0:10000,insert=0:10000,shuffle=0:1000",
}

func main() {
	var (
		seed    uint64
		trials  int
		algos   []string
		verbose bool
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)

	root := &cobra.Command{
		Use:           "diffbench",
		Short:         "Benchmark diff algorithms against generated workloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [workload...]",
		Short: "Run the benchmark suite",
		Long: `Run the benchmark suite against one or more workload tuples.

Each workload is a comma separated list of key=value pairs:

  diffbench run count=10000,delete=0:1000,insert=0:1000,shuffle=0:100

Ranges are half-open start:end index spans. With no arguments a default
ladder of workload sizes is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			tuples := args
			if len(tuples) == 0 {
				tuples = defaultWorkloads
			}
			configs := make([]diffbench.Config, 0, len(tuples))
			for _, tuple := range tuples {
				cfg, err := cli.ParseConfig(tuple, seed)
				if err != nil {
					return err
				}
				configs = append(configs, cfg)
			}
			return cli.Bench(cmd.OutOrStdout(), log, configs, algos, trials)
		},
	}
	runCmd.Flags().Uint64Var(&seed, "seed", 1, "workload generation seed")
	runCmd.Flags().IntVar(&trials, "trials", diffbench.DefaultTrials, "trials per unit, minimum kept")
	runCmd.Flags().StringSliceVar(&algos, "algos", nil, "algorithms to benchmark (default: all registered)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-trial timings")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered diff algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.List(cmd.OutOrStdout())
		},
	}

	root.AddCommand(runCmd, listCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "diffbench: %v\n", err)
		os.Exit(1)
	}
}
