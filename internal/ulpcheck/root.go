package ulpcheck

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/kdt3rd/pal/hwy"
)

// RootOptions holds the global flags.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats are the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand builds the ulpcheck command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ulpcheck",
		Short: "Measure the accuracy of the SIMD math routines",
		Long: `ulpcheck evaluates the vector math routines over a range of inputs and
compares every result with Go's float64 math package rounded to float32.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			setupLogging(cmd, opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	return cmd
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	slog.Debug("target",
		"level", hwy.CurrentName(),
		"width", hwy.CurrentWidth(),
		"float32_lanes", hwy.MaxLanes[float32](),
		"cpu", hwy.CPUFeatures().Names)
}
