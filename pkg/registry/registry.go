/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Component registry for the MJSchema generator. Wraps the built-in
component tables with ordered access, name lookup, and integrity validation.
Implements the ComponentSource interface consumed by the generator core.
*/

package registry

import (
	"fmt"
	"strings"

	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/interfaces"
)

// Registry provides ordered access to the built-in component definitions.
// The component order is the table order and never changes between runs.
type Registry struct {
	components []*interfaces.ComponentDefinition
	index      map[string]*interfaces.ComponentDefinition
	children   map[string][]string
}

// New creates a registry backed by the built-in component tables
func New() *Registry {
	defs := componentDefinitions()
	index := make(map[string]*interfaces.ComponentDefinition, len(defs))
	for _, def := range defs {
		index[def.Name] = def
	}
	return &Registry{
		components: defs,
		index:      index,
		children:   childrenTable(),
	}
}

// Components returns every component definition in registry order
func (r *Registry) Components() []*interfaces.ComponentDefinition {
	return r.components
}

// Component looks up a single component by name
func (r *Registry) Component(name string) (*interfaces.ComponentDefinition, bool) {
	def, ok := r.index[name]
	return def, ok
}

// Children returns the allowed child component names for a container.
// The second return is false for components without a children entry.
func (r *Registry) Children(parent string) ([]string, bool) {
	kids, ok := r.children[parent]
	return kids, ok
}

// Names returns all component names in registry order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.components))
	for _, def := range r.components {
		names = append(names, def.Name)
	}
	return names
}

// Len returns the number of registered components
func (r *Registry) Len() int {
	return len(r.components)
}

// Validate checks the integrity of the built-in tables: unique component and
// attribute names, parseable enum/unit annotations, defaults only for
// declared attributes, and a children table that references known components.
func (r *Registry) Validate() error {
	if len(r.components) == 0 {
		return fmt.Errorf("component table is empty")
	}

	seen := make(map[string]bool, len(r.components))
	for _, def := range r.components {
		if def.Name == "" {
			return fmt.Errorf("component table contains an unnamed component")
		}
		if def.Package == "" {
			return fmt.Errorf("component %s has no package name", def.Name)
		}
		if seen[def.Name] {
			return fmt.Errorf("duplicate component %s", def.Name)
		}
		seen[def.Name] = true

		attrs := make(map[string]bool, len(def.Attributes))
		for _, decl := range def.Attributes {
			if decl.Name == "" {
				return fmt.Errorf("component %s declares an unnamed attribute", def.Name)
			}
			if attrs[decl.Name] {
				return fmt.Errorf("component %s declares attribute %s twice", def.Name, decl.Name)
			}
			attrs[decl.Name] = true

			if err := validateAnnotation(decl.Annotation); err != nil {
				return fmt.Errorf("component %s attribute %s: %w", def.Name, decl.Name, err)
			}
		}

		for name := range def.Defaults {
			if !attrs[name] {
				return fmt.Errorf("component %s has a default for undeclared attribute %s", def.Name, name)
			}
		}
	}

	for parent, kids := range r.children {
		if !seen[parent] {
			return fmt.Errorf("children table references unknown parent %s", parent)
		}
		for _, kid := range kids {
			if !seen[kid] {
				return fmt.Errorf("children table of %s references unknown component %s", parent, kid)
			}
		}
	}

	return nil
}

// validateAnnotation rejects annotations that look like the structured forms
// but cannot be parsed. Free strings are always acceptable.
func validateAnnotation(raw string) error {
	ann := inference.ParseAnnotation(raw)
	switch {
	case ann.Kind == inference.KindOther && strings.HasPrefix(raw, "enum("):
		return fmt.Errorf("malformed enum annotation %q", raw)
	case ann.Kind == inference.KindOther && strings.HasPrefix(raw, "unit("):
		return fmt.Errorf("malformed unit annotation %q", raw)
	case ann.Kind == inference.KindEnum && len(ann.Values) == 1 && ann.Values[0] == "":
		return fmt.Errorf("enum annotation %q has no values", raw)
	}
	return nil
}
