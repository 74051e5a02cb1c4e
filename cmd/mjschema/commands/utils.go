/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the MJSchema commands. Provides common
configuration loading, logging setup, and config assembly used across all
command implementations.
*/

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/mjschema/pkg/core"
	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/logging"
)

// Shared logger instance, created by SetupLogging
var logger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Baseline defaults; flags, config file, and environment override
	defaults := core.NewDefaultConfig()
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("specs_file", defaults.SpecsFile)
	viper.SetDefault("schema_file", defaults.SchemaFile)
	viper.SetDefault("ai_schema_file", defaults.AISchemaFile)
	viper.SetDefault("schema_id", defaults.SchemaID)
	viper.SetDefault("pretty", defaults.Pretty)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("log_format", "custom")
	viper.SetDefault("log_max_files", 10)
	viper.SetDefault("docs.timeout", defaults.DocsTimeout)

	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("MJSCHEMA")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}

	l, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l

	return nil
}

// CloseLogging closes the shared logger and prunes old run logs
func CloseLogging() {
	if logger != nil {
		logger.Close()
	}
}

// generatorLogger returns the logrus instance behind the shared logger
func generatorLogger() *logrus.Logger {
	if logger != nil {
		return logger.GetLogger()
	}
	return logrus.StandardLogger()
}

// buildGeneratorConfig assembles the generator configuration from viper
func buildGeneratorConfig() *interfaces.GeneratorConfig {
	return &interfaces.GeneratorConfig{
		OutputDir:    viper.GetString("output_dir"),
		SpecsFile:    viper.GetString("specs_file"),
		SchemaFile:   viper.GetString("schema_file"),
		AISchemaFile: viper.GetString("ai_schema_file"),
		SchemaID:     viper.GetString("schema_id"),
		Pretty:       viper.GetBool("pretty"),
		Report:       viper.GetBool("report"),
		LogLevel:     viper.GetString("log_level"),
		LogFile:      viper.GetString("log_dir"),
		JSONLogs:     viper.GetBool("json_logs"),
		DocsFile:     viper.GetString("docs.file"),
		DocsBaseURL:  viper.GetString("docs.base_url"),
		DocsFetch:    viper.GetBool("docs.fetch"),
		DocsTimeout:  viper.GetDuration("docs.timeout"),
	}
}
