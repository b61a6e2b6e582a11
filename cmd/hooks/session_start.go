package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentwatch/observability-hooks/internal/command"
	"github.com/agentwatch/observability-hooks/internal/hooks"
	"github.com/agentwatch/observability-hooks/internal/launcher"
	"github.com/agentwatch/observability-hooks/internal/obs"
	"github.com/agentwatch/observability-hooks/internal/sourceapp"
)

// systemMessage is the hook output Claude Code surfaces to the user.
type systemMessage struct {
	SystemMessage string `json:"systemMessage"`
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session-start",
		Short: "Announce a new session to the observability server",
		Long: `Reads hook input from stdin and posts a SessionStart event. When
OBSERVABILITY_AUTO_START=true it first tries to launch the server via the
plugin's ensure-server script. Always exits 0; a missing server only
produces an informational message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := hooks.ReadHookInput(cmd.InOrStdin(), cmd.ErrOrStderr())

			sessionID := input.StringOr("session_id", "unknown")
			runner := command.NewRunner()
			app := sourceapp.Detect(ctx, command.NewGitRunner(runner))

			client := obs.NewClient(obs.ServerURLFromEnv())
			if launcher.AutoStartEnabled() {
				launcher.New(runner, client).EnsureRunning(ctx)
			}

			if !client.CheckHealth(ctx) {
				printSystemMessage(cmd, "Observability server not running. Use /observability-start to enable monitoring.")
				return nil
			}

			cwd := input.String("cwd")
			if cwd == "" {
				cwd, _ = os.Getwd()
			}

			event := &obs.Event{
				SourceApp:     app,
				SessionID:     sessionID,
				HookEventType: obs.EventSessionStart,
				Payload: map[string]interface{}{
					"cwd":             cwd,
					"permission_mode": input.StringOr("permission_mode", "unknown"),
				},
			}

			if _, err := client.Send(ctx, event); err != nil {
				// Delivery is best-effort; the session proceeds regardless.
				return nil
			}

			printSystemMessage(cmd, fmt.Sprintf("Observability: Session %s started for %s",
				sourceapp.TruncateSessionID(sessionID, sourceapp.DisplayIDLength), app))
			return nil
		},
	}
}

func printSystemMessage(cmd *cobra.Command, msg string) {
	out, err := json.Marshal(systemMessage{SystemMessage: msg})
	if err != nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
}
