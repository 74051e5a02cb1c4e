/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: docs.go
Description: Documentation verification command for the MJSchema generator.
Extracts attribute tables from saved or live-rendered MJML documentation and
reports drift against the built-in registry.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/mjschema/pkg/docs"
	"github.com/kleascm/mjschema/pkg/registry"
)

// PerformDocsVerify compares documented attributes against the registry
func PerformDocsVerify(cmd *cobra.Command, args []string) error {
	fmt.Println("📚 MJSchema - Documentation Verification")
	fmt.Println("========================================")
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

	file := viper.GetString("docs.file")
	fetch := viper.GetBool("docs.fetch")

	if file == "" && !fetch {
		return fmt.Errorf("either --file or --fetch is required")
	}

	// Obtain the documentation HTML
	var html string
	if fetch {
		fetched, err := fetchDocumentation()
		if err != nil {
			return fmt.Errorf("failed to fetch documentation: %w", err)
		}
		html = fetched
	} else {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read documentation file: %w", err)
		}
		fmt.Printf("📁 Documentation file: %s\n", file)
		html = string(data)
	}
	fmt.Println()

	// Extract the attribute tables
	extractor := docs.NewExtractor()
	documented, err := extractor.Extract(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to extract attribute tables: %w", err)
	}

	if len(documented) == 0 {
		fmt.Println("📭 No attribute tables found in the documentation.")
		fmt.Println("   Check that the page contains component attribute tables.")
		return nil
	}

	fmt.Printf("📊 Found attribute tables for %d components\n", len(documented))
	fmt.Println()

	// Compare against the registry
	reg := registry.New()
	report := docs.Compare(reg, documented)

	for _, drift := range report.Drifts {
		logger.LogDrift(drift.Component, len(drift.Undeclared), len(drift.Undocumented), nil)
	}

	printDriftReport(report)

	if report.Clean() {
		fmt.Println("\n✨ Documentation verification completed: no drift detected!")
		return nil
	}

	fmt.Println("\n⚠️  Documentation drift detected. Review the registry tables.")
	return nil
}

// fetchDocumentation renders the documentation base URL in headless Chrome.
// A SIGINT/SIGTERM cancels the fetch cleanly.
func fetchDocumentation() (string, error) {
	baseURL := viper.GetString("docs.base_url")
	if baseURL == "" {
		return "", fmt.Errorf("docs base URL is required when live fetch is enabled")
	}
	timeout := viper.GetDuration("docs.timeout")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received shutdown signal, cancelling fetch...")
		cancel()
	}()

	fmt.Printf("🌐 Fetching documentation from: %s\n", baseURL)

	fetcher := docs.NewPageFetcher(timeout)
	if err := fetcher.Start(ctx); err != nil {
		return "", err
	}
	defer fetcher.Stop()

	return fetcher.FetchPage(baseURL)
}

// printDriftReport prints the comparison results
func printDriftReport(report *docs.DriftReport) {
	fmt.Println("📋 Drift Report")
	fmt.Println("===============")
	fmt.Printf("Components compared: %d\n", report.Compared)

	for _, name := range report.UnknownComponents {
		fmt.Printf("❓ %s: documented but not registered\n", name)
	}

	for _, drift := range report.Drifts {
		fmt.Printf("\n🔍 %s\n", drift.Component)
		for _, attr := range drift.Undeclared {
			fmt.Printf("   ❌ documented but not declared: %s\n", attr)
		}
		for _, attr := range drift.Undocumented {
			fmt.Printf("   ⚠️  declared but not documented: %s\n", attr)
		}
	}

	if report.Clean() {
		fmt.Println("✅ Registry and documentation agree")
	}
}
