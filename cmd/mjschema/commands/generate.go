/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for the MJSchema generator.
Handles the main generation pipeline with configuration validation, registry
assembly, artifact writing, and final statistics reporting.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/mjschema/pkg/core"
	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/kleascm/mjschema/pkg/utils"
)

// RunGenerate executes the main generation pipeline
func RunGenerate(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 MJSchema - Attribute Schema Generation")
	fmt.Println("=========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	// Create generator configuration
	config := buildGeneratorConfig()

	// Perform dry run if requested
	if viper.GetBool("dry_run") {
		return performDryRun(config)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create generator
	generator := core.NewGenerator()

	// Set up components
	if err := setupGeneratorComponents(generator, config); err != nil {
		return fmt.Errorf("failed to setup generator components: %w", err)
	}

	// Initialize generator
	if err := generator.Initialize(config); err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	// Run the pipeline
	if err := generator.Run(); err != nil {
		return fmt.Errorf("schema generation failed: %w", err)
	}

	// Print final statistics
	printFinalStats(generator)

	fmt.Println("\n✨ Schema generation completed!")
	return nil
}

// setupGeneratorComponents configures all generator components
func setupGeneratorComponents(generator *core.Generator, config *interfaces.GeneratorConfig) error {
	// Create component source
	reg := registry.New()
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	generator.SetSource(reg)

	// Create inference engine
	generator.SetInferencer(inference.NewEngine())

	// Wire logging and progress reporting
	generator.SetLogger(generatorLogger())
	generator.AddReporter(core.NewLoggerReporter(generatorLogger()))

	return nil
}

// performDryRun validates configuration without writing artifacts
func performDryRun(config *interfaces.GeneratorConfig) error {
	fmt.Println("🔍 Performing dry run validation...")
	fmt.Println()

	// Validate configuration
	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Println("✅ Configuration: valid")

	// Validate registry tables
	reg := registry.New()
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	fmt.Printf("✅ Registry: %d components\n", reg.Len())

	// Validate output directory
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", config.OutputDir, err)
	}
	fmt.Printf("✅ Output directory: %s\n", config.OutputDir)

	// List the artifacts a real run would write
	files := []string{config.SpecsFile, config.SchemaFile, config.AISchemaFile}
	if config.Report {
		files = append(files, utils.ReportFilename)
	}
	fmt.Println()
	for _, file := range files {
		fmt.Printf("   would write %s\n", filepath.Join(config.OutputDir, file))
	}

	fmt.Println("\n✨ Dry run validation completed successfully!")
	fmt.Println("   Configuration is valid and ready for generation.")
	return nil
}

// printFinalStats prints comprehensive final statistics
func printFinalStats(generator *core.Generator) {
	stats := generator.Stats()

	fmt.Println("\n📊 Final Statistics")
	fmt.Println("==================")
	fmt.Printf("Total Runtime: %v\n", stats.Duration)
	fmt.Printf("Components: %d\n", stats.Components)
	fmt.Printf("Skipped: %d\n", stats.Skipped)
	fmt.Printf("Attributes: %d\n", stats.Attributes)
	fmt.Printf("Enums: %d\n", stats.Enums)
	fmt.Printf("Patterns: %d\n", stats.Patterns)
	fmt.Printf("Free Strings: %d\n", stats.FreeStrings)
	fmt.Printf("Defaults: %d\n", stats.Defaults)
	fmt.Printf("Restricted Components: %d\n", stats.AIComponents)
	fmt.Printf("Artifacts Written: %d\n", stats.ArtifactsWritten)

	for _, path := range generator.Artifacts() {
		fmt.Printf("💾 %s\n", path)
	}
}
