// Package output renders selected transform rules for terminal display.
// Rendering is presentation only; nothing here participates in rule
// evaluation.
package output

import (
	"fmt"
	"strings"

	"github.com/bindle-build/bindle/pkg/rules"
	"github.com/bindle-build/bindle/pkg/transforms"
	"github.com/bindle-build/bindle/pkg/types"
)

// RenderRules renders the ordered rule list for a build context
func RenderRules(ctx rules.Context, list []rules.Rule) string {
	var b strings.Builder

	header := GetStyle(StyleHeader)
	nameStyle := GetStyle(StyleRuleName)
	condStyle := GetStyle(StyleCondition)
	effectStyle := GetStyle(StyleEffect)
	muted := GetStyle(StyleMuted)

	b.WriteString(header.Render(fmt.Sprintf("Transform rules for %s", ctx.Variant())))
	b.WriteString("\n\n")

	for i, rule := range list {
		b.WriteString(fmt.Sprintf("%s %s\n",
			muted.Render(fmt.Sprintf("%d.", i+1)),
			nameStyle.Render(rule.Name)))
		if rule.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", muted.Render(rule.Description)))
		}
		b.WriteString(fmt.Sprintf("   when: %s\n", condStyle.Render(rule.Condition.Describe())))
		for _, effect := range rule.Effects {
			b.WriteString(fmt.Sprintf("   then: %s\n", effectStyle.Render(describeEffect(effect))))
		}
		if i < len(list)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderEffects renders the accumulated effects for one candidate file
func RenderEffects(fact types.ResourceFact, effects []types.TransformSpec) string {
	var b strings.Builder

	nameStyle := GetStyle(StyleRuleName)
	effectStyle := GetStyle(StyleEffect)
	muted := GetStyle(StyleMuted)

	b.WriteString(nameStyle.Render(fact.Path))
	if len(effects) == 0 {
		b.WriteString(muted.Render("  (no transforms)"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")

	for _, effect := range effects {
		b.WriteString(fmt.Sprintf("   %s\n", effectStyle.Render(describeEffect(effect))))
	}

	return b.String()
}

func describeEffect(effect types.TransformSpec) string {
	switch e := effect.(type) {
	case transforms.StripPageExports:
		return fmt.Sprintf("%s [%s]", e.Kind(), e.Filter)
	case transforms.DynamicImport:
		flags := []string{fmt.Sprintf("dev=%t", e.IsDevelopment), fmt.Sprintf("server=%t", e.IsServer)}
		if e.IsServerComponents {
			flags = append(flags, "server-components")
		}
		if e.PagesDir != nil {
			flags = append(flags, fmt.Sprintf("pages=%s", *e.PagesDir))
		}
		return fmt.Sprintf("%s [%s]", e.Kind(), strings.Join(flags, " "))
	case transforms.FontLoader:
		return fmt.Sprintf("%s [%s]", e.Kind(), strings.Join(e.Loaders, ", "))
	default:
		return effect.Kind()
	}
}
