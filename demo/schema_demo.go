/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema_demo.go
Description: Beautiful demo showcasing the schema generation pipeline including
annotation inference, the component registry, document assembly, and the
restricted schema exclusions. Demonstrates the generator with real examples.
*/

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/kleascm/mjschema/pkg/schema"
)

func main() {
	fmt.Println("🌸 MJSchema - Attribute Schema Demo 🌸")
	fmt.Println("======================================")
	fmt.Println()

	// Demo 1: Annotation Inference
	demoInference()

	// Demo 2: The Component Registry
	demoRegistry()

	// Demo 3: Document Assembly
	demoDocuments()

	// Demo 4: Restricted Schema
	demoRestrictedSchema()

	fmt.Println("🎉 Schema Demo Complete! 🎉")
}

func demoInference() {
	fmt.Println("✨ Demo 1: Annotation Inference")
	fmt.Println("-------------------------------")

	engine := inference.NewEngine()

	samples := []struct {
		name       string
		annotation string
		defaultVal any
	}{
		{"align", "enum(left,right,center)", "center"},
		{"padding", "unit(px,%){1,4}", "10px 25px"},
		{"width", "unit(px,%)", nil},
		{"background-color", "color", "#414141"},
		{"fluid-on-mobile", "boolean", false},
		{"css-class", "string", nil},
	}

	for _, sample := range samples {
		fragment := engine.Infer(sample.name, sample.annotation, sample.defaultVal)

		data, err := json.MarshalIndent(fragment, "", "  ")
		if err != nil {
			log.Printf("Error marshaling fragment: %v", err)
			continue
		}

		fmt.Printf("%s (%s):\n%s\n\n", sample.name, sample.annotation, string(data))
	}
}

func demoRegistry() {
	fmt.Println("📦 Demo 2: The Component Registry")
	fmt.Println("---------------------------------")

	reg := registry.New()
	fmt.Printf("Registered components: %d\n", reg.Len())

	button, ok := reg.Component("mj-button")
	if !ok {
		log.Println("mj-button missing from the registry")
		return
	}

	fmt.Printf("mj-button comes from %s and declares %d attributes:\n", button.Package, len(button.Attributes))
	for _, decl := range button.Attributes[:5] {
		fmt.Printf("  %-18s %s\n", decl.Name, decl.Annotation)
	}
	fmt.Printf("  ... and %d more\n", len(button.Attributes)-5)

	if kids, ok := reg.Children("mj-section"); ok {
		fmt.Printf("mj-section children: %s\n", strings.Join(kids, ", "))
	}
	fmt.Println()
}

func demoDocuments() {
	fmt.Println("📋 Demo 3: Document Assembly")
	fmt.Println("----------------------------")

	result := buildAll()

	fmt.Printf("Specs dump: %d components\n", result.Documents.Specs.Len())
	fmt.Printf("Full schema: %d branches, $id %s\n", len(result.Documents.Full.AllOf), result.Documents.Full.ID)

	// Show the conditional branch for one component
	for _, branch := range result.Documents.Full.AllOf {
		typeProp, ok := branch.If.Properties.Get("type")
		if !ok || typeProp.Const != "mj-spacer" {
			continue
		}
		data, _ := json.MarshalIndent(branch, "", "  ")
		fmt.Printf("mj-spacer branch:\n%s\n", string(data))
		break
	}
	fmt.Println()
}

func demoRestrictedSchema() {
	fmt.Println("🔒 Demo 4: Restricted Schema")
	fmt.Println("----------------------------")

	result := buildAll()

	excluded := schema.AIExcludedComponents()
	fmt.Printf("Excluded components: %s\n", strings.Join(excluded, ", "))
	fmt.Printf("Full branches: %d, restricted branches: %d\n",
		len(result.Documents.Full.AllOf), len(result.Documents.AI.AllOf))
	fmt.Printf("Usage comment: %s\n", result.Documents.AI.Comments)
	fmt.Println()
}

func buildAll() *schema.Result {
	reg := registry.New()
	builder := schema.NewBuilder(reg, inference.NewEngine())
	return builder.Build(schema.BuildOptions{
		SchemaID:     "https://kleascm.github.io/mjschema",
		SchemaFile:   "mjml.schema.json",
		AISchemaFile: "mjml.ai.schema.json",
	})
}
