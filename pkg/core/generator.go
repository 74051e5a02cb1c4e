/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Main generator pipeline implementation. Drives the component
source through the inference engine into the three output documents and onto
disk, with per-component skip handling, run statistics, and progress
reporting. Components are injected before Initialize().
*/

package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/schema"
	"github.com/kleascm/mjschema/pkg/utils"
)

// Generator orchestrates one generation run
type Generator struct {
	config *interfaces.GeneratorConfig
	stats  *GeneratorStats
	logger *logrus.Logger

	// Core components
	source   interfaces.ComponentSource
	inferrer interfaces.Inferencer
	builder  *schema.Builder
	writer   interfaces.ArtifactWriter

	// Run state
	runID     string
	documents *schema.Documents
	skipped   []schema.Skip
	artifacts []string

	reporters []Reporter
}

// NewGenerator creates a new generator instance
func NewGenerator() *Generator {
	return &Generator{
		stats: &GeneratorStats{
			StartTime: time.Now(),
		},
		logger: logrus.New(),
	}
}

// SetLogger replaces the default logger
func (g *Generator) SetLogger(logger *logrus.Logger) {
	g.logger = logger
}

// SetSource sets the component source for the generator
func (g *Generator) SetSource(source interfaces.ComponentSource) {
	g.source = source
}

// SetInferencer sets the attribute inference engine
func (g *Generator) SetInferencer(inferrer interfaces.Inferencer) {
	g.inferrer = inferrer
}

// SetWriter overrides the artifact writer. Initialize() installs the default
// JSON writer when none is set.
func (g *Generator) SetWriter(writer interfaces.ArtifactWriter) {
	g.writer = writer
}

// AddReporter registers a progress reporter
func (g *Generator) AddReporter(reporter Reporter) {
	g.reporters = append(g.reporters, reporter)
}

// Initialize wires the generator with the given configuration.
// The component source and inference engine must be injected first.
func (g *Generator) Initialize(config *interfaces.GeneratorConfig) error {
	g.config = config

	if g.source == nil {
		return fmt.Errorf("component source not set - use SetSource() before Initialize()")
	}
	if g.inferrer == nil {
		return fmt.Errorf("inference engine not set - use SetInferencer() before Initialize()")
	}
	if g.writer == nil {
		g.writer = schema.NewWriter(config.OutputDir, config.Pretty)
	}

	g.builder = schema.NewBuilder(g.source, g.inferrer)
	g.runID = uuid.New().String()

	g.logger.WithFields(logrus.Fields{
		"run_id":     g.runID,
		"components": len(g.source.Components()),
		"output_dir": config.OutputDir,
	}).Info("Generator initialized successfully")
	return nil
}

// Run executes the pipeline: build the documents, report skips, write the
// artifacts, and optionally the run report. Component skips are not errors;
// a failed artifact write aborts the run.
func (g *Generator) Run() error {
	if g.builder == nil {
		return fmt.Errorf("generator not initialized - call Initialize() first")
	}

	g.logger.Info("Starting schema generation")

	result := g.builder.Build(schema.BuildOptions{
		SchemaID:     g.config.SchemaID,
		SchemaFile:   g.config.SchemaFile,
		AISchemaFile: g.config.AISchemaFile,
	})
	g.documents = result.Documents
	g.skipped = result.Skipped

	for _, skip := range result.Skipped {
		g.logger.WithFields(logrus.Fields{
			"component": skip.Component,
			"reason":    skip.Reason,
		}).Warn("Component skipped")
		for _, r := range g.reporters {
			r.OnComponentSkipped(skip.Component, skip.Reason)
		}
	}

	for pair := result.Documents.Specs.Oldest(); pair != nil; pair = pair.Next() {
		for _, r := range g.reporters {
			r.OnComponentBuilt(pair.Key, pair.Value.Attributes.Len())
		}
	}

	g.collectStats(result)

	if err := g.writeArtifacts(); err != nil {
		return err
	}

	if g.config.Report {
		path, err := utils.WriteRunReport(g.config.OutputDir, g.report())
		if err != nil {
			return fmt.Errorf("failed to write run report: %w", err)
		}
		g.logger.WithField("path", path).Info("Run report written")
	}

	g.stats.Duration = time.Since(g.stats.StartTime)
	g.logger.WithFields(logrus.Fields{
		"components": g.stats.Components,
		"attributes": g.stats.Attributes,
		"skipped":    g.stats.Skipped,
		"artifacts":  g.stats.ArtifactsWritten,
		"duration":   g.stats.Duration,
	}).Info("Schema generation completed")
	return nil
}

// writeArtifacts persists the three documents in a stable order
func (g *Generator) writeArtifacts() error {
	targets := []struct {
		filename string
		document any
	}{
		{g.config.SpecsFile, g.documents.Specs},
		{g.config.SchemaFile, g.documents.Full},
		{g.config.AISchemaFile, g.documents.AI},
	}

	for _, target := range targets {
		path, err := g.writer.Write(target.filename, target.document)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", target.filename, err)
		}
		g.artifacts = append(g.artifacts, path)
		g.stats.ArtifactsWritten++
		for _, r := range g.reporters {
			r.OnArtifactWritten(target.filename, path)
		}
	}
	return nil
}

// collectStats derives the run statistics from the built documents
func (g *Generator) collectStats(result *schema.Result) {
	for pair := result.Documents.Specs.Oldest(); pair != nil; pair = pair.Next() {
		g.stats.Components++
		for ap := pair.Value.Attributes.Oldest(); ap != nil; ap = ap.Next() {
			g.stats.Attributes++
			fragment := ap.Value
			switch {
			case len(fragment.Enum) > 0:
				g.stats.Enums++
			case fragment.Pattern != "":
				g.stats.Patterns++
			default:
				g.stats.FreeStrings++
			}
			if fragment.Default != nil {
				g.stats.Defaults++
			}
		}
	}
	g.stats.Skipped = len(result.Skipped)
	g.stats.AIComponents = len(result.Documents.AI.AllOf)
}

// report assembles the run report document
func (g *Generator) report() *RunReport {
	records := make([]SkipRecord, 0, len(g.skipped))
	for _, skip := range g.skipped {
		records = append(records, SkipRecord{Component: skip.Component, Reason: skip.Reason.Error()})
	}
	return &RunReport{
		RunID:       g.runID,
		GeneratedAt: time.Now(),
		Stats:       g.stats,
		Skipped:     records,
		Artifacts:   g.artifacts,
	}
}

// Stats returns the statistics of the last run
func (g *Generator) Stats() *GeneratorStats {
	return g.stats
}

// Documents returns the documents built by the last run
func (g *Generator) Documents() *schema.Documents {
	return g.documents
}

// RunID returns the unique id assigned at initialization
func (g *Generator) RunID() string {
	return g.runID
}

// Artifacts returns the paths written by the last run
func (g *Generator) Artifacts() []string {
	return g.artifacts
}

// NewDefaultConfig returns the configuration the CLI starts from
func NewDefaultConfig() *interfaces.GeneratorConfig {
	return &interfaces.GeneratorConfig{
		OutputDir:    "schemas",
		SpecsFile:    "mjml.specs.json",
		SchemaFile:   "mjml.schema.json",
		AISchemaFile: "mjml.ai.schema.json",
		SchemaID:     "https://kleascm.github.io/mjschema",
		Pretty:       true,
		LogLevel:     "info",
		DocsTimeout:  30 * time.Second,
	}
}
