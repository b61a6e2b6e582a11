package hooks

import (
	"fmt"
	"regexp"
)

// Sensitive file patterns: env files, credential stores, private keys.
// Substring/suffix matches, case-insensitive, not anchored to the full path.
var sensitiveFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.env$`),
	regexp.MustCompile(`(?i)\.env\.local$`),
	regexp.MustCompile(`(?i)\.env\.production$`),
	regexp.MustCompile(`(?i)credentials\.json$`),
	regexp.MustCompile(`(?i)secrets\.json$`),
	regexp.MustCompile(`(?i)\.pem$`),
	regexp.MustCompile(`(?i)\.key$`),
	regexp.MustCompile(`(?i)id_rsa`),
	regexp.MustCompile(`(?i)id_ed25519`),
}

// Exceptions that are always allowed, checked before the sensitive patterns.
// Sample and template env files carry no real secrets.
var allowedSensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.env\.sample$`),
	regexp.MustCompile(`(?i)\.env\.example$`),
	regexp.MustCompile(`(?i)\.env\.template$`),
}

// fileAccessTools are the tools whose file_path argument this rule inspects.
var fileAccessTools = map[string]bool{
	"Read":  true,
	"Write": true,
	"Edit":  true,
}

// sensitiveFileRule blocks reads and writes of credential-bearing files.
type sensitiveFileRule struct{}

// NewSensitiveFileRule creates a new rule that blocks sensitive file access.
func NewSensitiveFileRule() Rule {
	return &sensitiveFileRule{}
}

// Name returns the unique identifier for this rule.
func (r *sensitiveFileRule) Name() string {
	return "sensitive-file"
}

// Description returns a human-readable description of what this rule does.
func (r *sensitiveFileRule) Description() string {
	return "Blocks access to env files, credential stores, and private keys"
}

// Evaluate checks if the file path points to a sensitive file.
// The allowlist takes precedence: a path matching an allowed exception is
// permitted regardless of the sensitive patterns.
func (r *sensitiveFileRule) Evaluate(use *ToolUse) *RuleResult {
	if !fileAccessTools[use.ToolName] {
		return NewAllowedResult()
	}

	filePath := use.StringArg("file_path")

	for _, pattern := range allowedSensitivePatterns {
		if pattern.MatchString(filePath) {
			return NewAllowedResult()
		}
	}

	for _, pattern := range sensitiveFilePatterns {
		if pattern.MatchString(filePath) {
			return NewBlockedResult(
				r.Name(),
				fmt.Sprintf("Sensitive file access detected: %s", filePath),
			)
		}
	}

	return NewAllowedResult()
}
