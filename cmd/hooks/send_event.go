package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentwatch/observability-hooks/internal/command"
	"github.com/agentwatch/observability-hooks/internal/hooks"
	"github.com/agentwatch/observability-hooks/internal/obs"
	"github.com/agentwatch/observability-hooks/internal/sourceapp"
	"github.com/agentwatch/observability-hooks/internal/transcript"
)

func newSendEventCmd() *cobra.Command {
	var (
		eventType     string
		sourceAppFlag string
		addChat       bool
		summarize     bool
	)

	cmd := &cobra.Command{
		Use:   "send-event",
		Short: "Forward a hook event to the observability server",
		Long: `Reads hook input from stdin, shapes it into an event for the given
--event-type, and posts it to the observability server. Delivery is
best-effort: when the server is down or unreachable the event is dropped
and the command still exits 0, so observability never blocks the agent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := hooks.ReadHookInput(cmd.InOrStdin(), cmd.ErrOrStderr())
			if input.IsEmpty() {
				return nil
			}

			app := sourceAppFlag
			if app == "" {
				git := command.NewGitRunner(command.NewRunner())
				app = sourceapp.Detect(cmd.Context(), git)
			}

			event := &obs.Event{
				SourceApp:     app,
				SessionID:     input.StringOr("session_id", "unknown"),
				HookEventType: eventType,
				Payload:       buildPayload(eventType, input),
			}
			if addChat {
				event.Chat = transcript.Read(input.String("transcript_path"))
			}
			_ = summarize // accepted for compatibility; summaries are generated server-side

			client := obs.NewClient(obs.ServerURLFromEnv())
			deliverEvent(cmd, client, event)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "event-type", "", "hook event type (PreToolUse, PostToolUse, Stop, ...)")
	cmd.Flags().StringVar(&sourceAppFlag, "source-app", "", "override the auto-detected source app name")
	cmd.Flags().BoolVar(&addChat, "add-chat", false, "include the chat transcript in the event")
	cmd.Flags().BoolVar(&summarize, "summarize", false, "accepted for compatibility; has no effect")
	cmd.MarkFlagRequired("event-type")

	return cmd
}

// buildPayload extracts the payload fields relevant to the event type.
// Unrecognized event types carry the whole hook input as payload.
func buildPayload(eventType string, input *hooks.HookInput) map[string]interface{} {
	payload := map[string]interface{}{}

	switch eventType {
	case obs.EventPreToolUse, obs.EventPostToolUse:
		payload["tool_name"] = input.StringOr("tool_name", "unknown")
		payload["tool_input"] = input.Map("tool_input")
		if result, ok := input.Field("tool_result"); ok {
			payload["tool_result"] = result
		}

	case obs.EventUserPromptSubmit:
		payload["user_prompt"] = input.String("user_prompt")

	case obs.EventStop, obs.EventSubagentStop:
		payload["reason"] = input.String("reason")
		payload["stop_type"] = input.String("stop_type")

	case obs.EventNotification:
		payload["message"] = input.String("message")
		payload["notification_type"] = input.String("type")

	default:
		payload = input.Fields()
	}

	return payload
}

// deliverEvent health-gates and posts the event. A down server skips the
// send entirely, an unreachable server is silent, and a server rejection is
// reported as a warning only.
func deliverEvent(cmd *cobra.Command, client *obs.Client, event *obs.Event) {
	ctx := cmd.Context()

	if !client.CheckHealth(ctx) {
		return
	}

	resp, err := client.Send(ctx, event)
	if err != nil {
		var connErr *obs.ConnectionError
		if errors.As(err, &connErr) {
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: server error: %v\n", err)
		return
	}

	if os.Getenv(obs.EnvDebug) != "" {
		if out, err := json.Marshal(resp); err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), string(out))
		}
	}
}
