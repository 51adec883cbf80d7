package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release time; left as a plain constant here since
// this simulator has no release pipeline of its own.
const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the babelsim version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
