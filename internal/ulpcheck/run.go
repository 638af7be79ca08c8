package ulpcheck

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kdt3rd/pal/hwy/contrib/workerpool"
)

// RunOptions holds the flags of the run command.
type RunOptions struct {
	*RootOptions
	Config string
}

// NewRunCommand builds "ulpcheck run".
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run --config FILE",
		Short: "Run the sweeps listed in a YAML file",
		Long: `Run executes every sweep of a YAML file concurrently on one worker pool and
reports them in file order. It exits with status 1 when any sweep exceeds its
bound.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.Config)
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}
			results, err := RunAll(cmd.Context(), cfg)
			if err != nil {
				return WrapExitError(ExitCommandError, "run sweeps", err)
			}
			if err := NewReporter(opts.Format, cmd.OutOrStdout()).Results(results); err != nil {
				return WrapExitError(ExitCommandError, "write report", err)
			}
			failed := 0
			for _, r := range results {
				if !r.Pass {
					failed++
				}
			}
			if failed > 0 {
				return NewExitError(ExitFailure, "sweeps exceeded their bound")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Config, "config", "", "path to the sweep file (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// RunAll runs the sweeps of cfg concurrently. The first error cancels the
// rest.
func RunAll(ctx context.Context, cfg *Config) ([]*Result, error) {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	results := make([]*Result, len(cfg.Sweeps))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range cfg.Sweeps {
		g.Go(func() error {
			slog.Debug("sweep start", "index", i, "func", s.Func)
			res, err := Run(ctx, pool, s)
			if err != nil {
				return err
			}
			slog.Debug("sweep done", "func", s.Func, "max_ulp", res.MaxULP, "pass", res.Pass)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
