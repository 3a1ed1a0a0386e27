package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (r *runner) providersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List translation providers and their deadlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := r.svc.API.Providers()
			if r.flags.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), list)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Kind, p.Label, time.Duration(p.DeadlineMs)*time.Millisecond)
			}
			return tw.Flush()
		},
	}
}
