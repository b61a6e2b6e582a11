package hooks

// Rule represents a rule that evaluates whether a tool use should be allowed.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Description returns a human-readable description of what this rule does.
	Description() string

	// Evaluate checks if the tool use should be allowed.
	// Rules are pure: they never perform I/O and never fail. Missing or
	// malformed tool arguments evaluate as allowed.
	Evaluate(use *ToolUse) *RuleResult
}

// DefaultRules returns the rule set evaluated by the pre-tool-use hook.
func DefaultRules() []Rule {
	return []Rule{
		NewDangerousRmRule(),
		NewSensitiveFileRule(),
	}
}
