/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Self-check command for the MJSchema generator. Validates registry
integrity, pattern rule compilation, exclusion list consistency, and output
directory writability, and lists the inference rule tables.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/kleascm/mjschema/pkg/schema"
)

// PerformSelfCheck performs comprehensive generator validation
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 MJSchema - System Self-Check")
	fmt.Println("===============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Registry Integrity", checkRegistryIntegrity},
		{"Pattern Rule Compilation", checkPatternRules},
		{"Description Rules", checkDescriptionRules},
		{"Exclusion List Consistency", checkExclusionList},
		{"Output Directory Writability", checkOutputWritable},
		{"Configuration Validation", checkConfigurationValidation},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	printRuleTables()

	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! Generator is ready.")
		return nil
	}

	fmt.Println("⚠️  Some checks failed. Please address the issues before generating.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// printRuleTables lists the ordered inference rule tables
func printRuleTables() {
	fmt.Println("📋 Pattern Rules (first match wins)")
	for i, name := range inference.PatternRuleNames() {
		fmt.Printf("   %d. %s\n", i+1, name)
	}
	fmt.Println()

	fmt.Println("📋 Description Rules (first match wins)")
	for i, name := range inference.DescriptionRuleNames() {
		fmt.Printf("   %d. %s\n", i+1, name)
	}
	fmt.Println()
}

// checkRegistryIntegrity validates the built-in component tables
func checkRegistryIntegrity() error {
	return registry.New().Validate()
}

// checkPatternRules verifies every derived pattern compiles
func checkPatternRules() error {
	reg := registry.New()
	for _, def := range reg.Components() {
		for _, decl := range def.Attributes {
			pattern := inference.PatternFor(decl.Name, decl.Annotation)
			if pattern == "" {
				continue
			}
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("pattern for %s.%s does not compile: %w", def.Name, decl.Name, err)
			}
		}
	}
	return nil
}

// checkDescriptionRules verifies every attribute gets a description
func checkDescriptionRules() error {
	if len(inference.DescriptionRuleNames()) == 0 {
		return fmt.Errorf("description rule table is empty")
	}

	reg := registry.New()
	for _, def := range reg.Components() {
		for _, decl := range def.Attributes {
			if inference.DescriptionFor(decl.Name, decl.Annotation) == "" {
				return fmt.Errorf("no description for %s.%s", def.Name, decl.Name)
			}
		}
	}
	return nil
}

// checkExclusionList verifies the restricted schema exclusions reference
// known components
func checkExclusionList() error {
	reg := registry.New()
	for _, name := range schema.AIExcludedComponents() {
		if _, ok := reg.Component(name); !ok {
			return fmt.Errorf("exclusion list references unknown component %s", name)
		}
	}
	return nil
}

// checkOutputWritable verifies the output directory can be written
func checkOutputWritable() error {
	outputDir := viper.GetString("output_dir")
	if outputDir == "" {
		outputDir = "schemas"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	testFile := filepath.Join(outputDir, ".mjschema_write_check")
	if err := os.WriteFile(testFile, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("cannot write to output directory: %w", err)
	}
	os.Remove(testFile)

	return nil
}

// checkConfigurationValidation validates the assembled configuration
func checkConfigurationValidation() error {
	return buildGeneratorConfig().Validate()
}
