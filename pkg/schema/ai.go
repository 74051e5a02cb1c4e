/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ai.go
Description: Assembly of the restricted "AI" schema variant. Starts from the
same inferred fragments as the full schema, drops a fixed set of components
and compound attributes, adds per-component children constraints from the
static hierarchy table, and embeds one example document plus a usage comment.
*/

package schema

import (
	"strings"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// aiExcludedComponents lists the component types the restricted schema drops.
// The list is fixed: layout-heavy and stateful components that generation
// models consistently misuse.
var aiExcludedComponents = []string{
	"mj-table",
	"mj-accordion",
	"mj-accordion-element",
	"mj-accordion-title",
	"mj-accordion-text",
	"mj-hero",
	"mj-navbar",
	"mj-navbar-link",
	"mj-carousel",
	"mj-carousel-image",
}

// aiUsageComment is the free-text guidance embedded in the restricted schema
const aiUsageComment = "Restricted schema for generated email documents. " +
	"Table, accordion, hero, navbar and carousel components are omitted, as are " +
	"the compound padding/border attributes and every inner-* attribute: use the " +
	"per-side attributes instead. Every node is an object with a type, optional " +
	"attributes, optional children and optional text content; children are " +
	"limited to the types listed for their parent."

// AIExcludedComponents returns the fixed component exclusion list
func AIExcludedComponents() []string {
	out := make([]string, len(aiExcludedComponents))
	copy(out, aiExcludedComponents)
	return out
}

// aiExcludedAttribute reports whether the restricted schema drops an
// attribute: the bare compound names plus the inner-* family.
func aiExcludedAttribute(name string) bool {
	return name == "padding" || name == "border" || strings.HasPrefix(name, "inner-")
}

// aiSchema assembles the restricted variant from the already-built component
// fragments.
func (b *Builder) aiSchema(built []builtComponent, opts BuildOptions) *jsonschema.Schema {
	excluded := make(map[string]bool, len(aiExcludedComponents))
	for _, name := range aiExcludedComponents {
		excluded[name] = true
	}

	surviving := make(map[string]bool, len(built))
	names := make([]any, 0, len(built))
	for _, bc := range built {
		if excluded[bc.def.Name] {
			continue
		}
		surviving[bc.def.Name] = true
		names = append(names, bc.def.Name)
	}

	branches := make([]*jsonschema.Schema, 0, len(names))
	for _, bc := range built {
		if excluded[bc.def.Name] {
			continue
		}
		branch := componentBranch(bc.def.Name, filterAttributes(bc.attrs))
		if kids := b.allowedChildren(bc.def.Name, surviving); len(kids) > 0 {
			addChildrenConstraint(branch, kids)
		}
		branches = append(branches, branch)
	}

	root := nodeSchema(names)
	root.Title = "MJML document node (restricted)"
	root.Description = "Restricted validation schema for generated email documents. Excluded components and compound attributes are rejected; children are constrained per component."
	root.Comments = aiUsageComment
	root.Examples = []any{exampleDocument()}
	root.AllOf = branches

	if id := documentID(opts.SchemaID, opts.AISchemaFile); id != "" {
		root.ID = jsonschema.ID(id)
	}
	return root
}

// filterAttributes drops the excluded attribute names, preserving order for
// the rest. The fragment schemas themselves are shared with the full schema.
func filterAttributes(attrs *orderedmap.OrderedMap[string, *jsonschema.Schema]) *orderedmap.OrderedMap[string, *jsonschema.Schema] {
	filtered := orderedmap.New[string, *jsonschema.Schema]()
	for pair := attrs.Oldest(); pair != nil; pair = pair.Next() {
		if aiExcludedAttribute(pair.Key) {
			continue
		}
		filtered.Set(pair.Key, pair.Value)
	}
	return filtered
}

// allowedChildren intersects the static children table with the surviving
// component set. Components without a table entry get no constraint.
func (b *Builder) allowedChildren(name string, surviving map[string]bool) []any {
	kids, ok := b.source.Children(name)
	if !ok {
		return nil
	}
	out := make([]any, 0, len(kids))
	for _, kid := range kids {
		if surviving[kid] {
			out = append(out, kid)
		}
	}
	return out
}

// addChildrenConstraint narrows a branch's then-clause so every child node's
// type comes from the allowed list.
func addChildrenConstraint(branch *jsonschema.Schema, kids []any) {
	itemProps := orderedmap.New[string, *jsonschema.Schema]()
	itemProps.Set("type", &jsonschema.Schema{Enum: kids})

	branch.Then.Properties.Set("children", &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Properties: itemProps},
	})
}

// exampleDocument is the literal example embedded in the restricted schema
func exampleDocument() map[string]any {
	return map[string]any{
		"type": "mj-body",
		"attributes": map[string]any{
			"background-color": "#f4f4f4",
			"width":            "600px",
		},
		"children": []any{
			map[string]any{
				"type": "mj-section",
				"attributes": map[string]any{
					"background-color": "#ffffff",
					"padding-top":      "20px",
					"padding-bottom":   "20px",
				},
				"children": []any{
					map[string]any{
						"type": "mj-column",
						"children": []any{
							map[string]any{
								"type": "mj-text",
								"attributes": map[string]any{
									"font-size": "16px",
									"color":     "#333333",
								},
								"content": "Welcome aboard!",
							},
							map[string]any{
								"type": "mj-button",
								"attributes": map[string]any{
									"href":             "https://example.com/start",
									"background-color": "#414141",
								},
								"content": "Get started",
							},
						},
					},
				},
			},
		},
	}
}
