/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Attribute schema inference engine. Maps one loosely-typed
attribute declaration (name, type annotation, default value) to a JSON Schema
fragment: type, optional enum, optional regex pattern, human readable
description, optional default. Pure and total: every input produces a schema,
malformed input degrades to a plain string schema.
*/

package inference

import (
	"strings"

	"github.com/invopop/jsonschema"
)

// Engine implements the attribute schema inference
type Engine struct{}

// NewEngine creates a new inference engine
func NewEngine() *Engine {
	return &Engine{}
}

// Infer derives the JSON Schema fragment for a single attribute. Decision
// order, first match wins:
//
//  1. enum(...) annotation: closed string enum, no pattern.
//  2. boolean annotation OR a native bool default: the string enum
//     ["true","false"]. The default-value coupling is intentional and applies
//     whatever the annotation says.
//  3. integer annotation: integer type.
//  4. otherwise: string type plus the first pattern the derivation table
//     yields, if any.
//
// Enum and pattern are mutually exclusive by construction. The description is
// computed independently and never changes the branch taken. A nil default is
// treated as absent.
func (e *Engine) Infer(name string, annotation string, defaultValue any) *jsonschema.Schema {
	ann := ParseAnnotation(annotation)
	lower := strings.ToLower(name)
	_, boolDefault := defaultValue.(bool)

	schema := &jsonschema.Schema{Type: "string"}

	switch {
	case ann.Kind == KindEnum:
		schema.Enum = enumValues(ann.Values)
	case ann.Kind == KindBoolean || boolDefault:
		schema.Enum = []any{"true", "false"}
	case ann.Kind == KindInteger:
		schema.Type = "integer"
	default:
		if pattern := derivePattern(lower, ann); pattern != "" {
			schema.Pattern = pattern
		}
	}

	schema.Description = describeAttribute(lower, ann)

	if defaultValue != nil {
		schema.Default = defaultValue
	}

	return schema
}

// enumValues converts the parsed literals into schema enum entries,
// preserving declaration order.
func enumValues(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
