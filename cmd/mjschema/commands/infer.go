/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: One-off inference command for the MJSchema generator. Runs the
attribute heuristics on a single name/annotation/default triple and prints the
resulting JSON Schema fragment for debugging.
*/

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/mjschema/pkg/inference"
)

// PerformInference runs the inference heuristics on one attribute
func PerformInference(cmd *cobra.Command, args []string) error {
	fmt.Println("🧠 MJSchema - Attribute Inference")
	fmt.Println("=================================")
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

	name := viper.GetString("infer.name")
	if name == "" {
		return fmt.Errorf("attribute name is required")
	}
	annotation := viper.GetString("infer.annotation")
	rawDefault := viper.GetString("infer.default")

	fmt.Printf("🎯 Attribute: %s\n", name)
	if annotation != "" {
		fmt.Printf("🎯 Annotation: %s\n", annotation)
	}

	// A literal true/false becomes a native boolean so the enum coupling
	// behaves the way a component-declared boolean default does.
	var defaultValue any
	switch rawDefault {
	case "":
	case "true":
		defaultValue = true
		fmt.Println("🎯 Default: true (native boolean)")
	case "false":
		defaultValue = false
		fmt.Println("🎯 Default: false (native boolean)")
	default:
		defaultValue = rawDefault
		fmt.Printf("🎯 Default: %s\n", rawDefault)
	}
	fmt.Println()

	// Run the heuristics
	engine := inference.NewEngine()
	fragment := engine.Infer(name, annotation, defaultValue)

	data, err := json.MarshalIndent(fragment, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fragment: %w", err)
	}

	fmt.Println("📋 Inferred Fragment")
	fmt.Println("====================")
	fmt.Println(string(data))

	fmt.Println("\n✨ Inference completed!")
	return nil
}
