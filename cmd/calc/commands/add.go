package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"calc/internal/domain"
)

func addCmd(opts *options) *cobra.Command {
	var integer bool

	cmd := &cobra.Command{
		Use:   "add A B",
		Short: "Print the sum of two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				entry domain.Entry
				err   error
			)
			if integer {
				a, b, perr := parseInts(args[0], args[1])
				if perr != nil {
					return perr
				}
				entry, err = opts.wire.Calculator.AddInt(cmd.Context(), a, b)
			} else {
				a, b, perr := parseFloats(args[0], args[1])
				if perr != nil {
					return perr
				}
				entry, err = opts.wire.Calculator.Add(cmd.Context(), a, b)
			}
			if entry.ID != "" {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Sum())
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&integer, "int", false, "use checked 64-bit integer addition")
	return cmd
}

func parseFloats(as, bs string) (float64, float64, error) {
	a, err := strconv.ParseFloat(as, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", domain.ErrInvalidOperand, as)
	}
	b, err := strconv.ParseFloat(bs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", domain.ErrInvalidOperand, bs)
	}
	return a, b, nil
}

func parseInts(as, bs string) (int64, int64, error) {
	a, err := strconv.ParseInt(as, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", domain.ErrInvalidOperand, as)
	}
	b, err := strconv.ParseInt(bs, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", domain.ErrInvalidOperand, bs)
	}
	return a, b, nil
}
