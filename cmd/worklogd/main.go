package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worklogd",
		Short: "Work-hour tracking service",
		Long:  "worklogd serves the work log API: time entries, filtered listings and aggregated reports.",
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
