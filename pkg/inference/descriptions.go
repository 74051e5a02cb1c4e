/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: descriptions.go
Description: Ordered description rules for attribute names. Independent of the
pattern rules: descriptions never influence type, enum or pattern. A unit
annotation appends a units hint to whichever description matched.
*/

package inference

import (
	"strings"
)

// descriptionRule is one entry of the description table
type descriptionRule struct {
	name    string
	applies func(name string) bool
	text    string
}

// contains builds the common substring predicate
func contains(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, sub) }
}

// descriptionTable holds the description rules in priority order. As with the
// pattern table, order is load bearing: border-radius must win before border,
// align must step aside for vertical-align.
var descriptionTable = []descriptionRule{
	{name: "color", applies: contains("color"), text: "Color value (hex like #ffffff, rgb()/rgba()/hsl()/hsla(), or a named color)."},
	{name: "width", applies: contains("width"), text: "Width of the element."},
	{name: "height", applies: contains("height"), text: "Height of the element."},
	{name: "padding", applies: contains("padding"), text: "Padding around the content."},
	{name: "margin", applies: contains("margin"), text: "Margin around the element."},
	{name: "border-radius", applies: contains("border-radius"), text: "Corner rounding radius."},
	{name: "border", applies: contains("border"), text: "CSS border value (shorthand width style color, or none)."},
	{
		name: "align",
		applies: func(name string) bool {
			return strings.Contains(name, "align") && !strings.Contains(name, "vertical")
		},
		text: "Horizontal alignment.",
	},
	{name: "vertical-align", applies: contains("vertical-align"), text: "Vertical alignment."},
	{name: "font-family", applies: contains("font-family"), text: "Font family, comma separated fallbacks allowed."},
	{name: "font-size", applies: contains("font-size"), text: "Font size."},
	{name: "font-weight", applies: contains("font-weight"), text: "Font weight (named or numeric)."},
	{name: "href", applies: contains("href"), text: "Link destination URL."},
	{name: "src", applies: contains("src"), text: "Source URL of the asset."},
	{name: "alt", applies: contains("alt"), text: "Alternative text shown when the asset cannot load."},
	{name: "title", applies: contains("title"), text: "Tooltip title text."},
	{name: "target", applies: contains("target"), text: "Link target (for example _blank)."},
	{name: "rel", applies: contains("rel"), text: "Link relationship (rel attribute)."},
	{name: "background-url", applies: contains("background-url"), text: "Background image URL."},
	{name: "background-position", applies: contains("background-position"), text: "Background position."},
	{name: "background-size", applies: contains("background-size"), text: "Background size."},
	{name: "background-repeat", applies: contains("background-repeat"), text: "Background repeat mode."},
	{name: "css-class", applies: contains("css-class"), text: "Extra CSS class names added to the rendered element."},
	{name: "direction", applies: contains("direction"), text: "Content direction (ltr or rtl)."},
	{name: "spacing", applies: contains("spacing"), text: "Spacing between items."},
}

// describeAttribute produces the human readable description for an attribute.
// First matching rule wins; no rule falls back to "<name> attribute".
func describeAttribute(name string, ann Annotation) string {
	text := ""
	for _, rule := range descriptionTable {
		if rule.applies(name) {
			text = rule.text
			break
		}
	}
	if text == "" {
		text = name + " attribute"
	}
	if ann.Kind == KindUnit {
		text += unitsHint(ann.Units)
	}
	return text
}

// unitsHint renders the unit list of a unit(...) annotation
func unitsHint(units []string) string {
	if len(units) == 0 {
		return " Unitless number."
	}
	return " Units: " + strings.Join(units, ", ") + "."
}

// DescriptionRuleNames returns the rule names in evaluation order
func DescriptionRuleNames() []string {
	names := make([]string, 0, len(descriptionTable))
	for _, rule := range descriptionTable {
		names = append(names, rule.name)
	}
	return names
}

// DescriptionFor exposes the description heuristic for a raw
// (name, annotation) pair.
func DescriptionFor(name, annotation string) string {
	return describeAttribute(strings.ToLower(name), ParseAnnotation(annotation))
}
