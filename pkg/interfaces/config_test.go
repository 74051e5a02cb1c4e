/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config_test.go
Description: Tests for GeneratorConfig validation. Covers the required-field
checks, log level whitelist and the conditional rules that only apply when
live documentation fetching is enabled.
*/

package interfaces_test

import (
	"testing"
	"time"

	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() interfaces.GeneratorConfig {
	return interfaces.GeneratorConfig{
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

func TestValidConfigPasses(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*interfaces.GeneratorConfig)
		wantErr string
	}{
		{
			name:    "missing output dir",
			mutate:  func(c *interfaces.GeneratorConfig) { c.OutputDir = "" },
			wantErr: "output directory is required",
		},
		{
			name:    "missing specs filename",
			mutate:  func(c *interfaces.GeneratorConfig) { c.SpecsFile = "" },
			wantErr: "artifact filenames must not be empty",
		},
		{
			name:    "missing schema filename",
			mutate:  func(c *interfaces.GeneratorConfig) { c.SchemaFile = "" },
			wantErr: "artifact filenames must not be empty",
		},
		{
			name:    "missing ai schema filename",
			mutate:  func(c *interfaces.GeneratorConfig) { c.AISchemaFile = "" },
			wantErr: "artifact filenames must not be empty",
		},
		{
			name:    "missing schema id",
			mutate:  func(c *interfaces.GeneratorConfig) { c.SchemaID = "" },
			wantErr: "schema id is required",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *interfaces.GeneratorConfig) { c.LogLevel = "loud" },
			wantErr: "unsupported log level: loud",
		},
		{
			name: "fetch without base url",
			mutate: func(c *interfaces.GeneratorConfig) {
				c.DocsFetch = true
				c.DocsBaseURL = ""
			},
			wantErr: "docs base URL is required when live fetch is enabled",
		},
		{
			name: "fetch without timeout",
			mutate: func(c *interfaces.GeneratorConfig) {
				c.DocsFetch = true
				c.DocsBaseURL = "https://documentation.mjml.io"
				c.DocsTimeout = 0
			},
			wantErr: "docs timeout must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigAcceptsAllLogLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"} {
		cfg := validConfig()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), "level %q should be accepted", level)
	}
}

func TestConfigFetchDisabledSkipsDocsChecks(t *testing.T) {
	cfg := validConfig()
	cfg.DocsFetch = false
	cfg.DocsBaseURL = ""
	cfg.DocsTimeout = 0
	assert.NoError(t, cfg.Validate())
}

func TestComponentDefinitionDefault(t *testing.T) {
	def := &interfaces.ComponentDefinition{
		Name:    "mj-thing",
		Package: "mjml-thing",
		Defaults: map[string]any{
			"width":  "600px",
			"height": nil,
		},
	}

	v, ok := def.Default("width")
	require.True(t, ok)
	assert.Equal(t, "600px", v)

	_, ok = def.Default("height")
	assert.False(t, ok, "nil defaults are treated as absent")

	_, ok = def.Default("missing")
	assert.False(t, ok)

	bare := &interfaces.ComponentDefinition{Name: "mj-bare"}
	_, ok = bare.Default("anything")
	assert.False(t, ok, "nil map must not panic")
}
