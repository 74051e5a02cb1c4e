/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: documents_test.go
Description: Unit tests for the document builder. Covers the raw specs dump,
the full schema shape (draft 2020-12, one conditional branch per component),
$id derivation, skip-on-panic isolation, and build determinism.
*/

package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"

	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/kleascm/mjschema/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultOptions mirrors the shipped generator configuration
func defaultOptions() schema.BuildOptions {
	return schema.BuildOptions{
		SchemaID:     "https://kleascm.github.io/mjschema",
		SchemaFile:   "mjml.schema.json",
		AISchemaFile: "mjml.ai.schema.json",
	}
}

// buildRegistryDocuments runs one full build over the built-in tables
func buildRegistryDocuments(t *testing.T) *schema.Documents {
	t.Helper()
	result := schema.NewBuilder(registry.New(), inference.NewEngine()).Build(defaultOptions())
	require.Empty(t, result.Skipped, "the built-in tables must assemble cleanly")
	require.NotNil(t, result.Documents)
	return result.Documents
}

// findBranch locates the conditional branch for one component type
func findBranch(t *testing.T, root *jsonschema.Schema, name string) *jsonschema.Schema {
	t.Helper()
	for _, branch := range root.AllOf {
		require.NotNil(t, branch.If)
		typeProp, ok := branch.If.Properties.Get("type")
		require.True(t, ok)
		if typeProp.Const == name {
			return branch
		}
	}
	return nil
}

// branchAttributes extracts the attribute map of a branch's then-clause
func branchAttributes(t *testing.T, branch *jsonschema.Schema) map[string]*jsonschema.Schema {
	t.Helper()
	require.NotNil(t, branch.Then)
	attrs, ok := branch.Then.Properties.Get("attributes")
	require.True(t, ok)
	require.NotNil(t, attrs.Properties)

	out := make(map[string]*jsonschema.Schema)
	for pair := attrs.Properties.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// stubSource is a hand-rolled component source for failure-path tests
type stubSource struct {
	defs []*interfaces.ComponentDefinition
	kids map[string][]string
}

func (s *stubSource) Components() []*interfaces.ComponentDefinition { return s.defs }

func (s *stubSource) Component(name string) (*interfaces.ComponentDefinition, bool) {
	for _, def := range s.defs {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}

func (s *stubSource) Children(parent string) ([]string, bool) {
	kids, ok := s.kids[parent]
	return kids, ok
}

// panickyInferencer panics for one attribute name and answers plainly otherwise
type panickyInferencer struct {
	on string
}

func (p *panickyInferencer) Infer(name string, annotation string, defaultValue any) *jsonschema.Schema {
	if name == p.on {
		panic("inference blew up")
	}
	return &jsonschema.Schema{Type: "string"}
}

// TestBuildProducesAllDocuments tests the happy path over the built-in tables
func TestBuildProducesAllDocuments(t *testing.T) {
	docs := buildRegistryDocuments(t)

	reg := registry.New()
	assert.Equal(t, reg.Len(), docs.Specs.Len())
	assert.Len(t, docs.Full.AllOf, reg.Len())
	require.NotNil(t, docs.AI)
}

// TestFullSchemaShape tests the top-level node schema
func TestFullSchemaShape(t *testing.T) {
	docs := buildRegistryDocuments(t)
	full := docs.Full

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", full.Version)
	assert.Equal(t, "object", full.Type)
	assert.Equal(t, []string{"type"}, full.Required)
	assert.Equal(t, "MJML document node", full.Title)

	typeProp, ok := full.Properties.Get("type")
	require.True(t, ok)
	assert.Equal(t, "string", typeProp.Type)
	assert.Len(t, typeProp.Enum, registry.New().Len())
	assert.Equal(t, "mj-body", typeProp.Enum[0])

	attrProp, ok := full.Properties.Get("attributes")
	require.True(t, ok)
	assert.Equal(t, "object", attrProp.Type)

	childrenProp, ok := full.Properties.Get("children")
	require.True(t, ok)
	assert.Equal(t, "array", childrenProp.Type)
	require.NotNil(t, childrenProp.Items)
	assert.Equal(t, "#", childrenProp.Items.Ref, "children recurse into the root schema")

	contentProp, ok := full.Properties.Get("content")
	require.True(t, ok)
	assert.Equal(t, "string", contentProp.Type)
}

// TestFullSchemaBranches tests the per-component conditionals
func TestFullSchemaBranches(t *testing.T) {
	docs := buildRegistryDocuments(t)

	for _, name := range registry.New().Names() {
		branch := findBranch(t, docs.Full, name)
		require.NotNil(t, branch, "missing branch for %s", name)
		assert.Equal(t, []string{"type"}, branch.If.Required)

		attrs := branchAttributes(t, branch)
		def, _ := registry.New().Component(name)
		assert.Len(t, attrs, len(def.Attributes), "attribute count for %s", name)
	}
}

// TestDocumentID tests $id derivation from the configured base URI
func TestDocumentID(t *testing.T) {
	docs := buildRegistryDocuments(t)
	assert.Equal(t, jsonschema.ID("https://kleascm.github.io/mjschema/mjml.schema.json"), docs.Full.ID)
	assert.Equal(t, jsonschema.ID("https://kleascm.github.io/mjschema/mjml.ai.schema.json"), docs.AI.ID)

	// Trailing slash on the base collapses to a single separator
	opts := defaultOptions()
	opts.SchemaID = "https://kleascm.github.io/mjschema/"
	result := schema.NewBuilder(registry.New(), inference.NewEngine()).Build(opts)
	assert.Equal(t, jsonschema.ID("https://kleascm.github.io/mjschema/mjml.schema.json"), result.Documents.Full.ID)

	// No base, no $id
	opts.SchemaID = ""
	result = schema.NewBuilder(registry.New(), inference.NewEngine()).Build(opts)
	assert.Equal(t, jsonschema.EmptyID, result.Documents.Full.ID)
	assert.Equal(t, jsonschema.EmptyID, result.Documents.AI.ID)
}

// TestSpecsEntries tests the raw dump against a known component
func TestSpecsEntries(t *testing.T) {
	docs := buildRegistryDocuments(t)

	spec, ok := docs.Specs.Get("mj-button")
	require.True(t, ok)
	assert.Equal(t, "mjml-button", spec.Package)

	annotation, ok := spec.Allowed.Get("align")
	require.True(t, ok)
	assert.Equal(t, "enum(left,center,right)", annotation)

	assert.Equal(t, "center", spec.Defaults["align"])

	fragment, ok := spec.Attributes.Get("align")
	require.True(t, ok)
	assert.Equal(t, []any{"left", "center", "right"}, fragment.Enum)
	assert.Equal(t, "center", fragment.Default)
}

// TestSpecsPreserveDeclarationOrder tests that attribute order survives the
// round trip into the dump
func TestSpecsPreserveDeclarationOrder(t *testing.T) {
	docs := buildRegistryDocuments(t)

	spec, ok := docs.Specs.Get("mj-body")
	require.True(t, ok)

	var names []string
	for pair := spec.Allowed.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"background-color", "css-class", "width"}, names)
}

// TestSkipIsolatesPanickingComponent tests that one failing component is
// reported and the rest still build
func TestSkipIsolatesPanickingComponent(t *testing.T) {
	source := &stubSource{
		defs: []*interfaces.ComponentDefinition{
			{
				Name:    "mj-good",
				Package: "mjml-good",
				Attributes: []interfaces.AttributeDeclaration{
					{Name: "width", Annotation: "unit(px)"},
				},
			},
			{
				Name:    "mj-bad",
				Package: "mjml-bad",
				Attributes: []interfaces.AttributeDeclaration{
					{Name: "detonator", Annotation: "string"},
				},
			},
		},
	}

	builder := schema.NewBuilder(source, &panickyInferencer{on: "detonator"})
	result := builder.Build(schema.BuildOptions{})

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "mj-bad", result.Skipped[0].Component)
	require.Error(t, result.Skipped[0].Reason)
	assert.Contains(t, result.Skipped[0].Reason.Error(), "panicked")

	docs := result.Documents
	require.NotNil(t, docs)
	assert.Equal(t, 1, docs.Specs.Len())
	_, ok := docs.Specs.Get("mj-good")
	assert.True(t, ok)
	assert.Len(t, docs.Full.AllOf, 1)

	typeProp, ok := docs.Full.Properties.Get("type")
	require.True(t, ok)
	assert.Equal(t, []any{"mj-good"}, typeProp.Enum)
}

// TestDuplicateDeclarationsCollapse tests that a source declaring the same
// attribute twice keeps only the first declaration
func TestDuplicateDeclarationsCollapse(t *testing.T) {
	source := &stubSource{
		defs: []*interfaces.ComponentDefinition{
			{
				Name:    "mj-dup",
				Package: "mjml-dup",
				Attributes: []interfaces.AttributeDeclaration{
					{Name: "align", Annotation: "enum(left,right)"},
					{Name: "align", Annotation: "enum(top,bottom)"},
				},
			},
		},
	}

	result := schema.NewBuilder(source, inference.NewEngine()).Build(schema.BuildOptions{})
	require.Empty(t, result.Skipped)

	spec, ok := result.Documents.Specs.Get("mj-dup")
	require.True(t, ok)
	assert.Equal(t, 1, spec.Allowed.Len())

	annotation, _ := spec.Allowed.Get("align")
	assert.Equal(t, "enum(left,right)", annotation)
}

// TestBuildDeterministic tests that two runs serialize byte-identically
func TestBuildDeterministic(t *testing.T) {
	builder := schema.NewBuilder(registry.New(), inference.NewEngine())

	first := builder.Build(defaultOptions())
	second := builder.Build(defaultOptions())

	for _, pick := range []func(*schema.Documents) any{
		func(d *schema.Documents) any { return d.Specs },
		func(d *schema.Documents) any { return d.Full },
		func(d *schema.Documents) any { return d.AI },
	} {
		a, err := json.Marshal(pick(first.Documents))
		require.NoError(t, err)
		b, err := json.Marshal(pick(second.Documents))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

// TestSerializedSchemaKeys tests the JSON surface of the full schema
func TestSerializedSchemaKeys(t *testing.T) {
	docs := buildRegistryDocuments(t)

	data, err := json.Marshal(docs.Full)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", decoded["$schema"])
	assert.Equal(t, "https://kleascm.github.io/mjschema/mjml.schema.json", decoded["$id"])

	allOf, ok := decoded["allOf"].([]any)
	require.True(t, ok)
	assert.Len(t, allOf, registry.New().Len())
}
