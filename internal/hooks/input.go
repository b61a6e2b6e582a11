package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// HookInput is the JSON object Claude Code writes to a hook's stdin.
// Absent or malformed input is represented as an empty input rather than an
// error: a hook must never fail just because the host sent nothing useful.
type HookInput struct {
	fields map[string]interface{}
}

// ReadHookInput reads one JSON object from the reader. Empty input yields an
// empty HookInput. Invalid JSON also yields an empty HookInput, with a
// warning written to warnW when it is non-nil.
func ReadHookInput(r io.Reader, warnW io.Writer) *HookInput {
	data, err := io.ReadAll(r)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return &HookInput{}
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		if warnW != nil {
			fmt.Fprintf(warnW, "Warning: failed to parse stdin JSON: %v\n", err)
		}
		return &HookInput{}
	}

	return &HookInput{fields: fields}
}

// IsEmpty reports whether the hook received no usable input.
func (h *HookInput) IsEmpty() bool {
	return len(h.fields) == 0
}

// Field returns the raw value for a key and whether the key was present.
func (h *HookInput) Field(key string) (interface{}, bool) {
	value, ok := h.fields[key]
	return value, ok
}

// String returns the string value for a key, or "" when the key is missing
// or holds a non-string value.
func (h *HookInput) String(key string) string {
	return h.StringOr(key, "")
}

// StringOr returns the string value for a key, falling back when the key is
// missing or holds a non-string value. A present empty string is returned
// as-is.
func (h *HookInput) StringOr(key, fallback string) string {
	value, ok := h.fields[key]
	if !ok {
		return fallback
	}

	strValue, ok := value.(string)
	if !ok {
		return fallback
	}

	return strValue
}

// Map returns the object value for a key. Missing keys and non-object
// values yield an empty map.
func (h *HookInput) Map(key string) map[string]interface{} {
	value, ok := h.fields[key]
	if !ok {
		return map[string]interface{}{}
	}

	mapValue, ok := value.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return mapValue
}

// Fields returns the full decoded input object, for event types whose
// payload is the hook data itself.
func (h *HookInput) Fields() map[string]interface{} {
	if h.fields == nil {
		return map[string]interface{}{}
	}
	return h.fields
}

// ToolUse is the tool-shaped view of a hook input consumed by validation
// rules.
type ToolUse struct {
	ToolName string

	args map[string]interface{}
}

// ToolUse extracts the tool name and tool arguments from the hook input.
func (h *HookInput) ToolUse() *ToolUse {
	return &ToolUse{
		ToolName: h.String("tool_name"),
		args:     h.Map("tool_input"),
	}
}

// StringArg returns the named tool argument, or "" when it is missing or
// not a string. An empty string never matches any rule pattern, so rules
// fail open on malformed tool input.
func (t *ToolUse) StringArg(name string) string {
	value, ok := t.args[name]
	if !ok {
		return ""
	}

	strValue, ok := value.(string)
	if !ok {
		return ""
	}

	return strValue
}
