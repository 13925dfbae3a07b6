package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = newRootCmd()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		versionCmd(),
	)
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	cmd := &cobra.Command{
		Use:   "commitmem",
		Short: "commitmem - per-process committed memory report",
		Long: `commitmem takes a snapshot of every accessible process and reports its
private usage, committed size and the private/shared split of committed memory.

Processes that cannot be opened are listed with their PID only.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, s)
		},
	}

	s.bindFlags(cmd.Flags())

	return cmd
}
