/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the MJSchema generator. Defines the core data
types and contracts used across all packages to break import cycles and enable
proper modular design.
*/

package interfaces

import (
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// AttributeDeclaration represents a single attribute as declared by a
// component package: a name plus the loosely-typed annotation string
// (e.g. "unit(px,%)", "enum(left,right)", "color"). An empty annotation
// means the attribute is untyped.
type AttributeDeclaration struct {
	Name       string
	Annotation string
}

// ComponentDefinition represents one markup component and everything the
// generator knows about it: the npm-style package it came from, its allowed
// attributes in declaration order, and its default attribute values.
// A nil Defaults entry is treated the same as an absent one.
type ComponentDefinition struct {
	Name       string
	Package    string
	Attributes []AttributeDeclaration
	Defaults   map[string]any
}

// Default returns the declared default for an attribute. The second return
// is false when no usable default exists (absent or nil).
func (c *ComponentDefinition) Default(name string) (any, bool) {
	if c.Defaults == nil {
		return nil, false
	}
	v, ok := c.Defaults[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// GeneratorConfig represents the configuration for a generator run
type GeneratorConfig struct {
	OutputDir    string
	SpecsFile    string
	SchemaFile   string
	AISchemaFile string
	SchemaID     string // Base URI written into the documents' $id
	Pretty       bool
	Report       bool // Also write generation-report.json
	LogLevel     string
	LogFile      string
	JSONLogs     bool
	DocsFile     string
	DocsBaseURL  string
	DocsFetch    bool
	DocsTimeout  time.Duration
}

// Validate checks the GeneratorConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *GeneratorConfig) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.SpecsFile == "" || c.SchemaFile == "" || c.AISchemaFile == "" {
		return fmt.Errorf("artifact filenames must not be empty")
	}
	if c.SchemaID == "" {
		return fmt.Errorf("schema id is required")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.LogLevel)
	}
	if c.DocsFetch && c.DocsBaseURL == "" {
		return fmt.Errorf("docs base URL is required when live fetch is enabled")
	}
	if c.DocsFetch && c.DocsTimeout <= 0 {
		return fmt.Errorf("docs timeout must be positive")
	}
	return nil
}

// ComponentSource interface for providing component definitions
// Implemented by the built-in registry; a missing component is not an error
type ComponentSource interface {
	Components() []*ComponentDefinition
	Component(name string) (*ComponentDefinition, bool)
	Children(parent string) ([]string, bool)
}

// Inferencer interface for deriving an attribute's JSON Schema fragment
// from its name, annotation and default value. Implementations never fail:
// any input degrades to a plain string schema with a fallback description.
type Inferencer interface {
	Infer(name string, annotation string, defaultValue any) *jsonschema.Schema
}

// ArtifactWriter interface for persisting a generated document
type ArtifactWriter interface {
	Write(filename string, document any) (string, error)
}
