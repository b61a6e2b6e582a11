package hooks

// RuleEngine evaluates a fixed, ordered set of rules.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine creates a new rule engine with the given rules.
func NewRuleEngine(rules ...Rule) *RuleEngine {
	return &RuleEngine{
		rules: rules,
	}
}

// Evaluate evaluates all rules against the tool use in order.
// Returns the first blocking result, or an allowed result if no rule blocks.
// A nil tool use is allowed: validation fails open on missing data.
func (e *RuleEngine) Evaluate(use *ToolUse) *RuleResult {
	if use == nil {
		return NewAllowedResult()
	}

	for _, rule := range e.rules {
		if result := rule.Evaluate(use); !result.Allowed {
			return result
		}
	}

	return NewAllowedResult()
}
