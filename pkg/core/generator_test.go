/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator_test.go
Description: Unit tests for the generator pipeline. Covers initialization
requirements, the full run over the built-in tables, statistics collection,
reporter notifications, skip isolation, run reports, and write failures.
*/

package core_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/kleascm/mjschema/pkg/core"
	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns the default configuration pointed at a scratch directory
func testConfig(t *testing.T) *interfaces.GeneratorConfig {
	t.Helper()
	config := core.NewDefaultConfig()
	config.OutputDir = t.TempDir()
	return config
}

// newTestGenerator wires a generator over the built-in tables
func newTestGenerator(t *testing.T) *core.Generator {
	t.Helper()
	generator := core.NewGenerator()
	generator.SetSource(registry.New())
	generator.SetInferencer(inference.NewEngine())
	return generator
}

// captureReporter records every notification for assertions
type captureReporter struct {
	built     []string
	skipped   []string
	artifacts []string
}

func (r *captureReporter) OnComponentBuilt(name string, attributes int) {
	r.built = append(r.built, name)
}

func (r *captureReporter) OnComponentSkipped(name string, reason error) {
	r.skipped = append(r.skipped, name)
}

func (r *captureReporter) OnArtifactWritten(name string, path string) {
	r.artifacts = append(r.artifacts, name)
}

// failingWriter rejects every write
type failingWriter struct{}

func (w *failingWriter) Write(filename string, document any) (string, error) {
	return "", fmt.Errorf("disk is a lie")
}

// brokenSource yields one healthy and one doomed component
type brokenSource struct{}

func (s *brokenSource) Components() []*interfaces.ComponentDefinition {
	return []*interfaces.ComponentDefinition{
		{
			Name:    "mj-good",
			Package: "mjml-good",
			Attributes: []interfaces.AttributeDeclaration{
				{Name: "width", Annotation: "unit(px)"},
			},
		},
		{
			Name:    "mj-doomed",
			Package: "mjml-doomed",
			Attributes: []interfaces.AttributeDeclaration{
				{Name: "fuse", Annotation: "string"},
			},
		},
	}
}

func (s *brokenSource) Component(name string) (*interfaces.ComponentDefinition, bool) {
	for _, def := range s.Components() {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}

func (s *brokenSource) Children(parent string) ([]string, bool) { return nil, false }

// fuseInferencer panics on the fuse attribute
type fuseInferencer struct{}

func (f *fuseInferencer) Infer(name string, annotation string, defaultValue any) *jsonschema.Schema {
	if name == "fuse" {
		panic("lit")
	}
	return &jsonschema.Schema{Type: "string"}
}

// TestGeneratorInitialization tests wiring and run id assignment
func TestGeneratorInitialization(t *testing.T) {
	generator := newTestGenerator(t)
	require.NotNil(t, generator)

	err := generator.Initialize(testConfig(t))
	require.NoError(t, err)

	_, err = uuid.Parse(generator.RunID())
	assert.NoError(t, err, "run id must be a valid uuid")
}

// TestInitializeRequiresComponents tests the injection preconditions
func TestInitializeRequiresComponents(t *testing.T) {
	config := testConfig(t)

	generator := core.NewGenerator()
	err := generator.Initialize(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component source not set")

	generator.SetSource(registry.New())
	err = generator.Initialize(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inference engine not set")

	generator.SetInferencer(inference.NewEngine())
	assert.NoError(t, generator.Initialize(config))
}

// TestRunRequiresInitialize tests the uninitialized run guard
func TestRunRequiresInitialize(t *testing.T) {
	err := core.NewGenerator().Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

// TestGeneratorRunWritesArtifacts tests the full pipeline end to end
func TestGeneratorRunWritesArtifacts(t *testing.T) {
	config := testConfig(t)
	generator := newTestGenerator(t)
	require.NoError(t, generator.Initialize(config))
	require.NoError(t, generator.Run())

	artifacts := generator.Artifacts()
	require.Len(t, artifacts, 3)
	assert.Equal(t, filepath.Join(config.OutputDir, config.SpecsFile), artifacts[0])
	assert.Equal(t, filepath.Join(config.OutputDir, config.SchemaFile), artifacts[1])
	assert.Equal(t, filepath.Join(config.OutputDir, config.AISchemaFile), artifacts[2])

	for _, path := range artifacts {
		data, err := os.ReadFile(path)
		require.NoError(t, err, "artifact %s must exist", path)
		var decoded any
		assert.NoError(t, json.Unmarshal(data, &decoded), "artifact %s must hold valid JSON", path)
	}

	require.NotNil(t, generator.Documents())
}

// TestGeneratorStats tests the collected run statistics
func TestGeneratorStats(t *testing.T) {
	config := testConfig(t)
	generator := newTestGenerator(t)
	require.NoError(t, generator.Initialize(config))
	require.NoError(t, generator.Run())

	reg := registry.New()
	wantAttributes := 0
	wantDefaults := 0
	for _, def := range reg.Components() {
		wantAttributes += len(def.Attributes)
		wantDefaults += len(def.Defaults)
	}

	stats := generator.Stats()
	assert.Equal(t, reg.Len(), stats.Components)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, wantAttributes, stats.Attributes)
	assert.Equal(t, wantDefaults, stats.Defaults)
	assert.Equal(t, stats.Attributes, stats.Enums+stats.Patterns+stats.FreeStrings,
		"every fragment is exactly one of enum, pattern, or free string")
	assert.Positive(t, stats.Enums)
	assert.Positive(t, stats.Patterns)
	assert.Positive(t, stats.FreeStrings)
	assert.Equal(t, 3, stats.ArtifactsWritten)
	assert.Equal(t, reg.Len()-10, stats.AIComponents)
	assert.Positive(t, stats.Duration)
}

// TestGeneratorReporters tests progress notifications
func TestGeneratorReporters(t *testing.T) {
	config := testConfig(t)
	generator := newTestGenerator(t)
	reporter := &captureReporter{}
	generator.AddReporter(reporter)

	require.NoError(t, generator.Initialize(config))
	require.NoError(t, generator.Run())

	assert.Equal(t, registry.New().Names(), reporter.built)
	assert.Empty(t, reporter.skipped)
	assert.Equal(t, []string{config.SpecsFile, config.SchemaFile, config.AISchemaFile}, reporter.artifacts)
}

// TestGeneratorSkipPath tests that assembly failures skip the component
// without failing the run
func TestGeneratorSkipPath(t *testing.T) {
	config := testConfig(t)
	generator := core.NewGenerator()
	generator.SetSource(&brokenSource{})
	generator.SetInferencer(&fuseInferencer{})
	reporter := &captureReporter{}
	generator.AddReporter(reporter)

	require.NoError(t, generator.Initialize(config))
	require.NoError(t, generator.Run())

	stats := generator.Stats()
	assert.Equal(t, 1, stats.Components)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, []string{"mj-doomed"}, reporter.skipped)
	assert.Equal(t, []string{"mj-good"}, reporter.built)
	assert.Equal(t, 3, stats.ArtifactsWritten, "artifacts are still written on partial success")
}

// TestGeneratorWriteFailureAborts tests that a failing writer stops the run
func TestGeneratorWriteFailureAborts(t *testing.T) {
	config := testConfig(t)
	generator := newTestGenerator(t)
	generator.SetWriter(&failingWriter{})

	require.NoError(t, generator.Initialize(config))
	err := generator.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
	assert.Contains(t, err.Error(), "disk is a lie")
}

// TestGeneratorRunReport tests the optional run report artifact
func TestGeneratorRunReport(t *testing.T) {
	config := testConfig(t)
	config.Report = true

	generator := newTestGenerator(t)
	require.NoError(t, generator.Initialize(config))
	require.NoError(t, generator.Run())

	data, err := os.ReadFile(filepath.Join(config.OutputDir, "generation-report.json"))
	require.NoError(t, err)

	var report core.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, generator.RunID(), report.RunID)
	require.NotNil(t, report.Stats)
	assert.Equal(t, 3, report.Stats.ArtifactsWritten)
	assert.Len(t, report.Artifacts, 3)
	assert.Empty(t, report.Skipped)
	assert.False(t, report.GeneratedAt.IsZero())
}

// TestNewDefaultConfig tests the CLI baseline configuration
func TestNewDefaultConfig(t *testing.T) {
	config := core.NewDefaultConfig()
	assert.Equal(t, "schemas", config.OutputDir)
	assert.Equal(t, "mjml.specs.json", config.SpecsFile)
	assert.Equal(t, "mjml.schema.json", config.SchemaFile)
	assert.Equal(t, "mjml.ai.schema.json", config.AISchemaFile)
	assert.Equal(t, "https://kleascm.github.io/mjschema", config.SchemaID)
	assert.True(t, config.Pretty)
	assert.Equal(t, "info", config.LogLevel)
	assert.NoError(t, config.Validate())
}

// TestRunIDsAreUnique tests that every initialization mints a fresh id
func TestRunIDsAreUnique(t *testing.T) {
	first := newTestGenerator(t)
	require.NoError(t, first.Initialize(testConfig(t)))
	second := newTestGenerator(t)
	require.NoError(t, second.Initialize(testConfig(t)))
	assert.NotEqual(t, first.RunID(), second.RunID())
}
