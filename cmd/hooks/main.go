package main

import (
	"os"

	"github.com/spf13/cobra"
)

// exit is swapped out in tests to observe the block exit code.
var exit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-obs-hooks",
		Short: "Observability hooks for Claude Code",
		Long:  `Hook scripts for the multi-agent observability plugin: validate tool usage before execution and forward lifecycle events to a local observability server.`,
	}

	rootCmd.AddCommand(newPreToolUseCmd())
	rootCmd.AddCommand(newSendEventCmd())
	rootCmd.AddCommand(newSessionStartCmd())
	rootCmd.AddCommand(newStopCmd())

	return rootCmd
}
