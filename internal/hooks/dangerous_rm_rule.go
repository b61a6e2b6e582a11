package hooks

import (
	"fmt"
	"regexp"
)

// rmPattern pairs a compiled dangerous-command pattern with the readable
// form used in block messages.
type rmPattern struct {
	expr *regexp.Regexp
	desc string
}

// Recursive force-delete forms targeting the filesystem root, the home
// directory, a wildcard, or the parent directory, under either flag order.
var dangerousRmPatterns = []rmPattern{
	{regexp.MustCompile(`(?i)rm\s+-rf\s+/`), `rm -rf /`},
	{regexp.MustCompile(`(?i)rm\s+-rf\s+~`), `rm -rf ~`},
	{regexp.MustCompile(`(?i)rm\s+-rf\s+\*`), `rm -rf *`},
	{regexp.MustCompile(`(?i)rm\s+-rf\s+\.\.`), `rm -rf ..`},
	{regexp.MustCompile(`(?i)rm\s+-fr\s+/`), `rm -fr /`},
	{regexp.MustCompile(`(?i)rm\s+-fr\s+~`), `rm -fr ~`},
	{regexp.MustCompile(`(?i)rm\s+-fr\s+\*`), `rm -fr *`},
	{regexp.MustCompile(`(?i)rm\s+-fr\s+\.\.`), `rm -fr ..`},
}

// Directories where a recursive delete is routine cleanup rather than
// destruction: temp, dependency, cache, build, and git worktree directories.
// Matched case-sensitively, unlike the dangerous patterns.
var safeRmDirectories = []*regexp.Regexp{
	regexp.MustCompile(`/tmp/`),
	regexp.MustCompile(`/var/tmp/`),
	regexp.MustCompile(`trees/`),
	regexp.MustCompile(`\.cache/`),
	regexp.MustCompile(`node_modules/`),
	regexp.MustCompile(`__pycache__/`),
	regexp.MustCompile(`\.pytest_cache/`),
	regexp.MustCompile(`dist/`),
	regexp.MustCompile(`build/`),
}

// dangerousRmRule blocks Bash commands containing destructive recursive
// deletes, unless the command also references a safe sandbox directory.
//
// Known weakness: the sandbox check scans the entire command string, not the
// actual rm target, so a safe substring anywhere in the command (even in a
// trailing comment) lifts the block.
type dangerousRmRule struct{}

// NewDangerousRmRule creates a new rule that blocks destructive rm commands.
func NewDangerousRmRule() Rule {
	return &dangerousRmRule{}
}

// Name returns the unique identifier for this rule.
func (r *dangerousRmRule) Name() string {
	return "dangerous-rm"
}

// Description returns a human-readable description of what this rule does.
func (r *dangerousRmRule) Description() string {
	return "Blocks recursive force-delete commands outside safe sandbox directories"
}

// Evaluate checks if the Bash command contains a dangerous rm operation.
func (r *dangerousRmRule) Evaluate(use *ToolUse) *RuleResult {
	if use.ToolName != "Bash" {
		return NewAllowedResult()
	}

	command := use.StringArg("command")

	for _, pattern := range dangerousRmPatterns {
		if !pattern.expr.MatchString(command) {
			continue
		}

		if inSafeSandbox(command) {
			continue
		}

		return NewBlockedResult(
			r.Name(),
			fmt.Sprintf("Dangerous rm command detected: matches pattern '%s'", pattern.desc),
		)
	}

	return NewAllowedResult()
}

// inSafeSandbox reports whether the command references any safe sandbox
// directory.
func inSafeSandbox(command string) bool {
	for _, dir := range safeRmDirectories {
		if dir.MatchString(command) {
			return true
		}
	}
	return false
}
