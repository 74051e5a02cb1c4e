/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the MJSchema generator. Provides
command-line options, configuration management, and a beautiful user interface
for generating MJML attribute schemas with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/mjschema/cmd/mjschema/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int

	// Output configuration
	outputDir    string
	specsFile    string
	schemaFile   string
	aiSchemaFile string
	schemaID     string
	pretty       bool
	report       bool
	dryRun       bool

	// One-off inference configuration
	inferName       string
	inferAnnotation string
	inferDefault    string

	// Documentation verification configuration
	docsFile    string
	docsFetch   bool
	docsBaseURL string
	docsTimeout time.Duration
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "mjschema",
		Short: "MJSchema - MJML attribute schema generator",
		Long: `MJSchema generates JSON Schema artifacts for the MJML email markup language.
It infers attribute constraints (enums, unit patterns, colors, booleans) from the
loosely-typed annotations each component package declares, and emits a raw specs
dump, a full document schema, and a restricted schema for generated documents.`,
		Version: version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory (empty disables file logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the MJML attribute schema artifacts",
		Long: `Generate the three schema artifacts from the built-in component registry:
the raw attribute specs dump, the full document schema, and the restricted
schema for generated email documents. Component-level failures are skipped
and reported; the run itself keeps going.`,
		RunE: commands.RunGenerate,
	}

	// Add generate command flags
	generateCmd.Flags().StringVar(&outputDir, "output", "schemas", "Directory for schema artifacts")
	generateCmd.Flags().StringVar(&specsFile, "specs-file", "mjml.specs.json", "Filename for the raw specs dump")
	generateCmd.Flags().StringVar(&schemaFile, "schema-file", "mjml.schema.json", "Filename for the full document schema")
	generateCmd.Flags().StringVar(&aiSchemaFile, "ai-schema-file", "mjml.ai.schema.json", "Filename for the restricted schema")
	generateCmd.Flags().StringVar(&schemaID, "schema-id", "https://kleascm.github.io/mjschema", "Base URI for the documents' $id")
	generateCmd.Flags().BoolVar(&pretty, "pretty", true, "Indent the JSON artifacts")
	generateCmd.Flags().BoolVar(&report, "report", false, "Also write generation-report.json")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit without writing artifacts")

	// Bind flags to viper
	viper.BindPFlag("output_dir", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("specs_file", generateCmd.Flags().Lookup("specs-file"))
	viper.BindPFlag("schema_file", generateCmd.Flags().Lookup("schema-file"))
	viper.BindPFlag("ai_schema_file", generateCmd.Flags().Lookup("ai-schema-file"))
	viper.BindPFlag("schema_id", generateCmd.Flags().Lookup("schema-id"))
	viper.BindPFlag("pretty", generateCmd.Flags().Lookup("pretty"))
	viper.BindPFlag("report", generateCmd.Flags().Lookup("report"))
	viper.BindPFlag("dry_run", generateCmd.Flags().Lookup("dry-run"))

	rootCmd.AddCommand(generateCmd)

	// Add list-components command
	listComponentsCmd := &cobra.Command{
		Use:   "list-components",
		Short: "List registered components and their attributes",
		Long: `List every component in the built-in registry with its npm-style package,
attribute count, and allowed children.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.ListComponents(cmd, args)
		},
	}
	rootCmd.AddCommand(listComponentsCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform comprehensive checks to validate registry integrity, pattern rule
compilation, exclusion list consistency, and output directory writability.
Very useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Add infer command for one-off attribute inference
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer the schema fragment for a single attribute",
		Long: `Run the inference heuristics on one attribute and print the resulting JSON
Schema fragment. Useful for debugging annotation handling. A default of
"true" or "false" is passed through as a native boolean.`,
		RunE: commands.PerformInference,
	}

	// Add infer flags
	inferCmd.Flags().StringVar(&inferName, "name", "", "Attribute name (required)")
	inferCmd.Flags().StringVar(&inferAnnotation, "annotation", "", "Attribute annotation (e.g. unit(px,%), enum(left,right))")
	inferCmd.Flags().StringVar(&inferDefault, "default", "", "Default value")

	viper.BindPFlag("infer.name", inferCmd.Flags().Lookup("name"))
	viper.BindPFlag("infer.annotation", inferCmd.Flags().Lookup("annotation"))
	viper.BindPFlag("infer.default", inferCmd.Flags().Lookup("default"))

	// Mark required flags
	inferCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(inferCmd)

	// Add docs command with verify subcommand
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Documentation cross-checking utilities",
	}

	docsVerifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the registry against MJML documentation",
		Long: `Extract attribute tables from MJML documentation HTML and report drift
against the built-in registry: attributes documented but never declared, and
declared attributes the documentation misses. Reads a saved page with --file,
or renders live pages in headless Chrome with --fetch --base-url.`,
		RunE: commands.PerformDocsVerify,
	}

	// Add docs verify flags
	docsVerifyCmd.Flags().StringVar(&docsFile, "file", "", "Path to a saved documentation HTML file")
	docsVerifyCmd.Flags().BoolVar(&docsFetch, "fetch", false, "Fetch documentation pages with headless Chrome")
	docsVerifyCmd.Flags().StringVar(&docsBaseURL, "base-url", "https://documentation.mjml.io", "Documentation base URL for live fetches")
	docsVerifyCmd.Flags().DurationVar(&docsTimeout, "timeout", 30*time.Second, "Per-page render timeout for live fetches")

	viper.BindPFlag("docs.file", docsVerifyCmd.Flags().Lookup("file"))
	viper.BindPFlag("docs.fetch", docsVerifyCmd.Flags().Lookup("fetch"))
	viper.BindPFlag("docs.base_url", docsVerifyCmd.Flags().Lookup("base-url"))
	viper.BindPFlag("docs.timeout", docsVerifyCmd.Flags().Lookup("timeout"))

	docsCmd.AddCommand(docsVerifyCmd)
	rootCmd.AddCommand(docsCmd)

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the mjschema version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mjschema version %s\n", version)
		},
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
