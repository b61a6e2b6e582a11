package obs

// Hook event types recognized by the observability server.
const (
	EventPreToolUse       = "PreToolUse"
	EventPostToolUse      = "PostToolUse"
	EventUserPromptSubmit = "UserPromptSubmit"
	EventStop             = "Stop"
	EventSubagentStop     = "SubagentStop"
	EventNotification     = "Notification"
	EventSessionStart     = "SessionStart"
)

// Event is the envelope posted to the server's /events endpoint.
// The contract between the hooks and the server is this JSON shape, not
// shared Go types. Events are built fresh per hook invocation and never
// mutated after construction.
type Event struct {
	SourceApp     string                   `json:"source_app"`
	SessionID     string                   `json:"session_id"`
	HookEventType string                   `json:"hook_event_type"`
	Payload       map[string]interface{}   `json:"payload"`
	Chat          []map[string]interface{} `json:"chat,omitempty"`
	Summary       string                   `json:"summary,omitempty"`
	ModelName     string                   `json:"model_name,omitempty"`
}
