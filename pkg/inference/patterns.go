/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: patterns.go
Description: Ordered pattern-derivation rules for attribute values. Each rule
pairs a predicate with a regex builder; evaluation is strictly top-to-bottom
and the first applicable rule wins. The ordering is part of the contract and
is covered by tests.
*/

package inference

import (
	"strings"
)

// numberPattern matches the numeric part of a unit token (integer or decimal)
const numberPattern = `\d+(\.\d+)?`

// colorPattern accepts #-prefixed 3/6/8 digit hex, rgb/rgba/hsl/hsla calls
// with arbitrary non-')' content, or a bare named color.
const colorPattern = `^(#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|(rgb|rgba|hsl|hsla)\([^)]*\)|[a-zA-Z]+)$`

// borderPattern accepts "<width><px|em|rem> <style> <color...>" or the
// literal "none".
const borderPattern = `^(` + numberPattern + `(px|em|rem)\s+(solid|dashed|dotted|double|groove|ridge|inset|outset|none|hidden)\s+.+|none)$`

// urlPattern is deliberately permissive: everything except markup brackets,
// empty string included (template syntax, relative paths and data URIs pass).
const urlPattern = `^[^<>]*$`

// fontFamilyPattern blocks style injection only; comma separated lists pass.
const fontFamilyPattern = `^[^;{}]*$`

// dimensionPattern accepts one sized number or the bare keyword auto
const dimensionPattern = `^(` + numberPattern + `(px|%|em|rem|auto)|auto)$`

// spacingPattern accepts one or more whitespace-separated sized numbers
const spacingPattern = `^` + numberPattern + `(px|%|em|rem)(\s+` + numberPattern + `(px|%|em|rem))*$`

// attrContext carries the inputs the pattern rules decide on: the lowercased
// attribute name and the parsed annotation.
type attrContext struct {
	name string
	ann  Annotation
}

// patternRule is one entry of the derivation table
type patternRule struct {
	name    string
	applies func(*attrContext) bool
	build   func(*attrContext) string
}

// patternTable holds the derivation rules in priority order. Order is load
// bearing: color before border keeps border-color a color, the unit rules
// keep annotated dimensions away from the name-based guesses.
var patternTable = []patternRule{
	{
		name: "unit-list",
		applies: func(c *attrContext) bool {
			return c.ann.Kind == KindUnit && c.ann.Repeated && len(c.ann.Units) > 0
		},
		build: func(c *attrContext) string {
			tok := numberPattern + "(" + strings.Join(c.ann.Units, "|") + ")"
			// The {m,n} bound is not encoded: one or more tokens, unbounded.
			return `^` + tok + `(\s+` + tok + `)*$`
		},
	},
	{
		name: "unit",
		applies: func(c *attrContext) bool {
			return c.ann.Kind == KindUnit
		},
		build: func(c *attrContext) string {
			if len(c.ann.Units) == 0 {
				return `^` + numberPattern + `$`
			}
			return `^` + numberPattern + `(` + strings.Join(c.ann.Units, "|") + `)$`
		},
	},
	{
		name: "color",
		applies: func(c *attrContext) bool {
			return c.ann.Kind == KindColor || strings.Contains(c.name, "color")
		},
		build: func(c *attrContext) string { return colorPattern },
	},
	{
		name: "border-shorthand",
		applies: func(c *attrContext) bool {
			return strings.Contains(c.name, "border") && !strings.Contains(c.name, "radius")
		},
		build: func(c *attrContext) string { return borderPattern },
	},
	{
		name: "url-safe",
		applies: func(c *attrContext) bool {
			return strings.Contains(c.name, "url") ||
				strings.Contains(c.name, "href") ||
				strings.Contains(c.name, "src")
		},
		build: func(c *attrContext) string { return urlPattern },
	},
	{
		name: "font-family",
		applies: func(c *attrContext) bool {
			return strings.Contains(c.name, "font") && strings.Contains(c.name, "family")
		},
		build: func(c *attrContext) string { return fontFamilyPattern },
	},
	{
		name: "dimension",
		applies: func(c *attrContext) bool {
			if c.ann.Kind == KindUnit {
				return false
			}
			return strings.Contains(c.name, "width") ||
				strings.Contains(c.name, "height") ||
				strings.Contains(c.name, "size")
		},
		build: func(c *attrContext) string { return dimensionPattern },
	},
	{
		name: "spacing-list",
		applies: func(c *attrContext) bool {
			if c.ann.Kind == KindUnit {
				return false
			}
			return strings.Contains(c.name, "padding") ||
				strings.Contains(c.name, "margin") ||
				strings.Contains(c.name, "spacing")
		},
		build: func(c *attrContext) string { return spacingPattern },
	},
}

// derivePattern runs the table for one attribute. An empty return means no
// rule applied and the value stays a free string.
func derivePattern(name string, ann Annotation) string {
	ctx := &attrContext{name: name, ann: ann}
	for _, rule := range patternTable {
		if rule.applies(ctx) {
			return rule.build(ctx)
		}
	}
	return ""
}

// PatternRuleNames returns the rule names in evaluation order
func PatternRuleNames() []string {
	names := make([]string, 0, len(patternTable))
	for _, rule := range patternTable {
		names = append(names, rule.name)
	}
	return names
}

// PatternFor exposes the derivation for a raw (name, annotation) pair.
// Used by the CLI self-check and the one-off infer command.
func PatternFor(name, annotation string) string {
	return derivePattern(strings.ToLower(name), ParseAnnotation(annotation))
}
