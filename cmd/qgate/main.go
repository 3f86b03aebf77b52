package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qgate"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qgate",
		Short: "Exact single-qubit gate sequence evaluator",
		Long: `qgate evaluates long sequences of H, X, Y, Z and S gates applied to |0⟩.

Amplitudes are tracked exactly over {0, ±1, ±1/2, ±1/√2} and only converted
to floating point at the end, so no rounding error accumulates.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenCmd(), newRunCmd(), newTableCmd())
	return rootCmd
}

func newGenCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "gen [count] [file]",
		Short: "Write a random gate sequence file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if _, err := fmt.Sscan(args[0], &n); err != nil || n < 0 {
				return fmt.Errorf("invalid gate count %q", args[0])
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := qgate.WriteSequence(f, qgate.RandomSequence(n, seed)); err != nil {
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		mode    string
		workers int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Evaluate a gate sequence file",
		Long: `Evaluates a gate file with one of three evaluators:
  - sequential: exact state, one generator at a time
  - double:     complex128 state, rounded after every generator
  - parallel:   chunked exact matrices reduced by a worker pool, then folded
  - table:      lookups in the precomputed transition table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			seq, err := qgate.ReadSequence(f)
			f.Close()
			if err != nil {
				return err
			}

			var (
				result qgate.Amplitudes
				start  time.Time
			)
			switch mode {
			case "sequential":
				start = time.Now()
				result = qgate.Simulate(seq)
			case "double":
				start = time.Now()
				result = qgate.SimulateFloating(seq)
			case "parallel":
				opts := []qgate.ComposerOption{qgate.WithVerbose(verbose)}
				if workers > 0 {
					opts = append(opts, qgate.WithWorkers(workers))
				}
				composer := qgate.NewComposer(qgate.NewConfig(), opts...)
				start = time.Now()
				if result, err = composer.Compose(cmd.Context(), seq); err != nil {
					return err
				}
			case "table":
				table := qgate.BuildTable(qgate.WithExploreLogging(verbose))
				start = time.Now()
				result = table.Simulate(seq)
			default:
				return fmt.Errorf("unknown mode %q", mode)
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result)
			fmt.Fprintf(out, "Time taken: %.2f ms\n", float64(elapsed.Microseconds())/1000)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "parallel", "Evaluator: sequential, double, parallel or table")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count for parallel mode (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log pool, table and metrics activity")
	return cmd
}

func newTableCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the transition table over reachable exact states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := qgate.BuildTable()
			out := cmd.OutOrStdout()
			if dump {
				table.Dump(out)
				return nil
			}
			_, err := table.WriteTo(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the exact states instead of the table")
	return cmd
}
