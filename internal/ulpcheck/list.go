package ulpcheck

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kdt3rd/pal/hwy/contrib/algo"
)

// ListOptions holds the flags of the list command.
type ListOptions struct {
	*RootOptions
	Tiers []string
}

// NewListCommand builds "ulpcheck list".
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the functions with their tier, domain and bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers := make([]algo.Precision, 0, len(opts.Tiers))
			for _, s := range opts.Tiers {
				p, err := algo.ParsePrecision(s)
				if err != nil {
					return WrapExitError(ExitCommandError, "bad --tier", err)
				}
				tiers = append(tiers, p)
			}
			return NewReporter(opts.Format, cmd.OutOrStdout()).List(Funcs(lo.Uniq(tiers)...))
		},
	}
	cmd.Flags().StringSliceVar(&opts.Tiers, "tier", nil, "only list these tiers (accurate, fast, faster)")
	return cmd
}
