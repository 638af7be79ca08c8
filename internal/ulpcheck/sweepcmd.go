package ulpcheck

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdt3rd/pal/hwy/contrib/workerpool"
)

// SweepOptions holds the flags of the sweep command.
type SweepOptions struct {
	*RootOptions
	Sweep
	Workers int
	bound   uint64
}

// NewSweepCommand builds "ulpcheck sweep".
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep --func NAME",
		Short: "Sweep one function over a range",
		Long: `Sweep evaluates one function at evenly spaced inputs and reports the largest
ULP error, the input that produced it, the mean error and whether the bound
holds. Without --min/--max the registered domain is used.

Example:
  ulpcheck sweep --func exp2
  ulpcheck sweep --func log --min 0.5 --max 2 --samples 100000 --bound 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := Lookup(opts.Func); !ok {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("unknown function %q; known: %s", opts.Func, strings.Join(Names(), ", ")))
			}
			if cmd.Flags().Changed("bound") {
				opts.Bound = &opts.bound
			}
			pool := workerpool.New(opts.Workers)
			defer pool.Close()

			slog.Debug("sweep", "func", opts.Func, "min", opts.Min, "max", opts.Max,
				"step", opts.Step, "samples", opts.Samples, "workers", pool.NumWorkers())
			res, err := Run(cmd.Context(), pool, opts.Sweep)
			if err != nil {
				return WrapExitError(ExitCommandError, "sweep failed", err)
			}
			if err := NewReporter(opts.Format, cmd.OutOrStdout()).Results([]*Result{res}); err != nil {
				return WrapExitError(ExitCommandError, "write report", err)
			}
			if !res.Pass {
				return NewExitError(ExitFailure, res.Func+" exceeds its bound")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Func, "func", "", "function to sweep (see list)")
	f.Float32Var(&opts.Min, "min", 0, "first input")
	f.Float32Var(&opts.Max, "max", 0, "last input")
	f.Float64Var(&opts.Step, "step", 0, "distance between inputs")
	f.IntVar(&opts.Samples, "samples", 0, "number of inputs when --step is not set")
	f.IntVar(&opts.Workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.Uint64Var(&opts.bound, "bound", 0, "maximum ULP error (default: registered bound)")
	_ = cmd.MarkFlagRequired("func")
	cmd.MarkFlagsMutuallyExclusive("step", "samples")
	return cmd
}
