package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentwatch/observability-hooks/internal/hooks"
)

// denyResponse is written to stderr when a tool use is blocked. Claude Code
// feeds stderr back to the agent on exit code 2.
type denyResponse struct {
	Decision      string `json:"decision"`
	Reason        string `json:"reason"`
	SystemMessage string `json:"systemMessage"`
}

func newPreToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Validate a tool use before it executes",
		Long: `Reads hook input from stdin and evaluates the tool use against the safety
rules. Exits 0 to allow the tool use, 2 to block it; a block also writes a
deny decision to stderr for Claude to read. Missing or malformed input is
allowed by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := hooks.ReadHookInput(cmd.InOrStdin(), cmd.ErrOrStderr())
			if input.IsEmpty() {
				return nil
			}

			engine := hooks.NewRuleEngine(hooks.DefaultRules()...)
			result := engine.Evaluate(input.ToolUse())

			if !result.Allowed {
				deny := denyResponse{
					Decision:      "deny",
					Reason:        result.Message,
					SystemMessage: "Tool use blocked by observability plugin: " + result.Message,
				}
				out, err := json.Marshal(deny)
				if err != nil {
					return fmt.Errorf("failed to encode deny response: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), string(out))
				exit(2)
			}

			return nil
		},
	}
}
