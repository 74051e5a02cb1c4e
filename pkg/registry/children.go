/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: children.go
Description: Static parent-to-children table for the markup hierarchy. The
restricted schema builder reads it to emit per-component children constraints;
components absent from the table carry no constraint.
*/

package registry

// childrenTable maps each container component to the component types it may
// contain. Leaf components do not appear.
func childrenTable() map[string][]string {
	return map[string][]string{
		"mj-body":    {"mj-hero", "mj-raw", "mj-section", "mj-wrapper"},
		"mj-wrapper": {"mj-hero", "mj-raw", "mj-section"},
		"mj-section": {"mj-column", "mj-group", "mj-raw"},
		"mj-group":   {"mj-column", "mj-raw"},
		"mj-column": {
			"mj-accordion",
			"mj-button",
			"mj-carousel",
			"mj-divider",
			"mj-image",
			"mj-navbar",
			"mj-raw",
			"mj-social",
			"mj-spacer",
			"mj-table",
			"mj-text",
		},
		"mj-hero": {
			"mj-accordion",
			"mj-button",
			"mj-carousel",
			"mj-divider",
			"mj-image",
			"mj-navbar",
			"mj-raw",
			"mj-social",
			"mj-spacer",
			"mj-table",
			"mj-text",
		},
		"mj-accordion":         {"mj-accordion-element"},
		"mj-accordion-element": {"mj-accordion-title", "mj-accordion-text"},
		"mj-carousel":          {"mj-carousel-image"},
		"mj-navbar":            {"mj-navbar-link"},
		"mj-social":            {"mj-social-element"},
	}
}
