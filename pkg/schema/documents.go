/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: documents.go
Description: Assembly of the generated documents. Builds the raw component
specs dump and the full JSON Schema (draft 2020-12) from the component source
and the inference engine. One pass per run: every component is inferred once
and its fragments are shared between the documents.
*/

package schema

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kleascm/mjschema/pkg/interfaces"
)

// ComponentSpec is one entry of the raw specs dump
type ComponentSpec struct {
	Package    string                                             `json:"packageName"`
	Allowed    *orderedmap.OrderedMap[string, string]             `json:"allowedAttributes"`
	Defaults   map[string]any                                     `json:"defaultAttributes"`
	Attributes *orderedmap.OrderedMap[string, *jsonschema.Schema] `json:"attributes"`
}

// Documents bundles the three generated artifacts of one run
type Documents struct {
	Specs *orderedmap.OrderedMap[string, *ComponentSpec]
	Full  *jsonschema.Schema
	AI    *jsonschema.Schema
}

// Skip records a component the build left out and why
type Skip struct {
	Component string
	Reason    error
}

// Result is the outcome of a build: the documents plus the skipped
// components. Partial success is the norm; a skip never aborts the run.
type Result struct {
	Documents *Documents
	Skipped   []Skip
}

// BuildOptions carries the document level settings
type BuildOptions struct {
	SchemaID     string // Base URI for $id; empty omits $id entirely
	SchemaFile   string
	AISchemaFile string
}

// Builder assembles the output documents
type Builder struct {
	source   interfaces.ComponentSource
	inferrer interfaces.Inferencer
}

// NewBuilder creates a document builder over a component source and an
// inference engine
func NewBuilder(source interfaces.ComponentSource, inferrer interfaces.Inferencer) *Builder {
	return &Builder{source: source, inferrer: inferrer}
}

// builtComponent pairs a definition with its inferred attribute fragments
type builtComponent struct {
	def   *interfaces.ComponentDefinition
	attrs *orderedmap.OrderedMap[string, *jsonschema.Schema]
}

// Build runs the full assembly: raw specs, full schema, restricted schema.
// A component whose assembly panics is reported in Skipped and left out of
// every document; the remaining components still generate.
func (b *Builder) Build(opts BuildOptions) *Result {
	result := &Result{}
	specs := orderedmap.New[string, *ComponentSpec]()
	var built []builtComponent

	for _, def := range b.source.Components() {
		spec, err := b.componentSpec(def)
		if err != nil {
			result.Skipped = append(result.Skipped, Skip{Component: def.Name, Reason: err})
			continue
		}
		specs.Set(def.Name, spec)
		built = append(built, builtComponent{def: def, attrs: spec.Attributes})
	}

	result.Documents = &Documents{
		Specs: specs,
		Full:  b.fullSchema(built, opts),
		AI:    b.aiSchema(built, opts),
	}
	return result
}

// componentSpec assembles the raw-spec entry for one component, inferring
// every attribute in declaration order. A panic out of a pathological source
// is converted to an error so one component cannot take down the run.
func (b *Builder) componentSpec(def *interfaces.ComponentDefinition) (spec *ComponentSpec, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("component assembly panicked: %v", r)
		}
	}()

	allowed := orderedmap.New[string, string]()
	attrs := orderedmap.New[string, *jsonschema.Schema]()
	defaults := make(map[string]any)

	for _, decl := range def.Attributes {
		if _, dup := allowed.Get(decl.Name); dup {
			continue
		}
		allowed.Set(decl.Name, decl.Annotation)

		value, hasDefault := def.Default(decl.Name)
		if hasDefault {
			defaults[decl.Name] = value
		}

		var input any
		if hasDefault {
			input = value
		}
		attrs.Set(decl.Name, b.inferrer.Infer(decl.Name, decl.Annotation, input))
	}

	return &ComponentSpec{
		Package:    def.Package,
		Allowed:    allowed,
		Defaults:   defaults,
		Attributes: attrs,
	}, nil
}

// fullSchema assembles the unrestricted document schema: a node object with
// a type enum over every component and one if/then branch per component.
func (b *Builder) fullSchema(built []builtComponent, opts BuildOptions) *jsonschema.Schema {
	names := make([]any, 0, len(built))
	branches := make([]*jsonschema.Schema, 0, len(built))
	for _, bc := range built {
		names = append(names, bc.def.Name)
		branches = append(branches, componentBranch(bc.def.Name, bc.attrs))
	}

	root := nodeSchema(names)
	root.Title = "MJML document node"
	root.Description = "Validation schema for a single MJML component node. Each allOf branch binds one component type to its permitted attributes."
	root.AllOf = branches

	if id := documentID(opts.SchemaID, opts.SchemaFile); id != "" {
		root.ID = jsonschema.ID(id)
	}
	return root
}

// nodeSchema builds the shared top-level node shape
func nodeSchema(names []any) *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("type", &jsonschema.Schema{
		Type:        "string",
		Description: "Component type name.",
		Enum:        names,
	})
	props.Set("attributes", &jsonschema.Schema{
		Type:        "object",
		Description: "Attribute name to value mapping.",
	})
	props.Set("children", &jsonschema.Schema{
		Type:        "array",
		Description: "Nested component nodes.",
		Items:       &jsonschema.Schema{Ref: "#"},
	})
	props.Set("content", &jsonschema.Schema{
		Type:        "string",
		Description: "Raw text content of the node.",
	})

	return &jsonschema.Schema{
		Version:    jsonschema.Version,
		Type:       "object",
		Properties: props,
		Required:   []string{"type"},
	}
}

// componentBranch builds one if/then conditional: when the node's type equals
// the component name, its attributes are constrained to the inferred schemas.
func componentBranch(name string, attrs *orderedmap.OrderedMap[string, *jsonschema.Schema]) *jsonschema.Schema {
	ifProps := orderedmap.New[string, *jsonschema.Schema]()
	ifProps.Set("type", &jsonschema.Schema{Const: name})

	thenProps := orderedmap.New[string, *jsonschema.Schema]()
	thenProps.Set("attributes", &jsonschema.Schema{
		Type:       "object",
		Properties: attrs,
	})

	return &jsonschema.Schema{
		If:   &jsonschema.Schema{Properties: ifProps, Required: []string{"type"}},
		Then: &jsonschema.Schema{Properties: thenProps},
	}
}

// documentID joins the configured base URI with the artifact file name
func documentID(base, file string) string {
	if base == "" {
		return ""
	}
	if file == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + file
}
