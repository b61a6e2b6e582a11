package main

import (
	"github.com/spf13/cobra"

	"github.com/agentwatch/observability-hooks/internal/command"
	"github.com/agentwatch/observability-hooks/internal/hooks"
	"github.com/agentwatch/observability-hooks/internal/obs"
	"github.com/agentwatch/observability-hooks/internal/sourceapp"
	"github.com/agentwatch/observability-hooks/internal/transcript"
)

func newStopCmd() *cobra.Command {
	var addChat bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Send a stop event when Claude finishes responding",
		Long: `Reads hook input from stdin and posts a Stop event, optionally with the
chat transcript attached. Always exits 0; a failed send is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := hooks.ReadHookInput(cmd.InOrStdin(), cmd.ErrOrStderr())
			if input.IsEmpty() {
				return nil
			}

			git := command.NewGitRunner(command.NewRunner())
			app := sourceapp.Detect(ctx, git)

			client := obs.NewClient(obs.ServerURLFromEnv())
			if !client.CheckHealth(ctx) {
				return nil
			}

			event := &obs.Event{
				SourceApp:     app,
				SessionID:     input.StringOr("session_id", "unknown"),
				HookEventType: obs.EventStop,
				Payload: map[string]interface{}{
					"reason":    input.String("reason"),
					"stop_type": input.StringOr("stop_type", "end_turn"),
				},
			}
			if addChat {
				event.Chat = transcript.Read(input.String("transcript_path"))
			}

			// Delivery is best-effort; a failed send is dropped.
			_, _ = client.Send(ctx, event)
			return nil
		},
	}

	cmd.Flags().BoolVar(&addChat, "add-chat", false, "include the chat transcript in the event")

	return cmd
}
