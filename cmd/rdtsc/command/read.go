package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rdtsc"
)

func readCommand() *cobra.Command {
	var hex bool

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the current cycle counter value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := rdtsc.Read()
			if hex {
				fmt.Fprintf(cmd.OutOrStdout(), "%#016x\n", uint64(c))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", uint64(c))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&hex, "hex", false, "print in hexadecimal")

	return cmd
}
