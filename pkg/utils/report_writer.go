/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing the run report next to the generated
artifacts. Ensures the directory exists and writes indented JSON for easy
inspection and diffing between runs.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReportFilename is the stable name of the run report artifact
const ReportFilename = "generation-report.json"

// WriteRunReport writes a run report into the output directory
func WriteRunReport(outputDir string, report interface{}) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	filePath := filepath.Join(outputDir, ReportFilename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}
