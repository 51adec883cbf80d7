package main

import (
	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "babelsim",
		Short: "Simulate a babel-family loop-free distance-vector network",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}
