package rules

import (
	"github.com/bindle-build/bindle/pkg/conditions"
	"github.com/bindle-build/bindle/pkg/types"
)

// Rule names, stable for logs and CLI output.
const (
	RuleNamePagesTransforms = "pages-transforms"
	RuleNameDynamicImport   = "next-dynamic"
	RuleNameFontLoader      = "next-font"
)

// Rule pairs a condition tree with the ordered transform payloads to apply
// when the tree is satisfied. Rules are immutable once built and safe for
// concurrent evaluation.
type Rule struct {
	// Name identifies the rule family for logs and output rendering.
	Name string

	// Description is a human-readable summary of what the rule does.
	Description string

	// Condition gates the rule. Effects apply only when it matches.
	Condition conditions.Condition

	// Effects are applied in order when the condition matches. Opaque to
	// the rule engine.
	Effects []types.TransformSpec
}

// Matches reports whether the rule's condition is satisfied by the candidate
func (r Rule) Matches(fact types.ResourceFact) bool {
	return r.Condition.Matches(fact)
}

// CollectEffects evaluates every rule in list order against the candidate
// and accumulates the effects of all matching rules, preserving both rule
// order and effect order within each rule.
func CollectEffects(rules []Rule, fact types.ResourceFact) []types.TransformSpec {
	var effects []types.TransformSpec
	for _, rule := range rules {
		if rule.Matches(fact) {
			effects = append(effects, rule.Effects...)
		}
	}
	return effects
}
