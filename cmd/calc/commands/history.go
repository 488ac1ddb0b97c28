package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd(opts *options) *cobra.Command {
	var (
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.wire.Calculator
			if clearAll {
				if err := svc.ClearHistory(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}

			entries, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", e.At.Local().Format(time.DateTime), e)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the N most recent entries")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete all recorded entries")
	return cmd
}
