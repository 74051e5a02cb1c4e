/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: MJSchema.go
Description: Standalone artifact drift checker for mjschema. Rebuilds the three schema documents in memory from the built-in registry, compares them byte-for-byte against the artifacts on disk, and writes detailed HTML/JSON reports to ./check_output. Catches registry edits that were never regenerated. Modular, clean, and beautiful.
*/

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/mjschema/pkg/core"
	"github.com/kleascm/mjschema/pkg/inference"
	"github.com/kleascm/mjschema/pkg/interfaces"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/kleascm/mjschema/pkg/schema"
)

type CheckResult struct {
	Artifact string `json:"artifact"`
	Path     string `json:"path,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Expected int    `json:"expected_bytes,omitempty"`
	Actual   int    `json:"actual_bytes,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Duration string `json:"duration,omitempty"`
}

func buildDocuments(config *interfaces.GeneratorConfig) (*schema.Documents, []schema.Skip, error) {
	reg := registry.New()
	if err := reg.Validate(); err != nil {
		return nil, nil, err
	}
	builder := schema.NewBuilder(reg, inference.NewEngine())
	result := builder.Build(schema.BuildOptions{
		SchemaID:     config.SchemaID,
		SchemaFile:   config.SchemaFile,
		AISchemaFile: config.AISchemaFile,
	})
	return result.Documents, result.Skipped, nil
}

func checkArtifact(dir string, filename string, document any) CheckResult {
	start := time.Now()
	result := CheckResult{
		Artifact: filename,
		Path:     filepath.Join(dir, filename),
	}

	pretty, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result
	}
	pretty = append(pretty, '\n')

	compact, err := json.Marshal(document)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result
	}
	compact = append(compact, '\n')

	actual, err := os.ReadFile(result.Path)
	if os.IsNotExist(err) {
		result.Status = "missing"
		result.Detail = "artifact not on disk, run mjschema generate"
		result.Duration = time.Since(start).String()
		return result
	} else if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result
	}

	result.Expected = len(pretty)
	result.Actual = len(actual)

	if bytes.Equal(actual, pretty) || bytes.Equal(actual, compact) {
		result.Status = "match"
	} else {
		result.Status = "drift"
		result.Detail = fmt.Sprintf("regenerated output diverges at line %d", firstDiffLine(pretty, actual))
	}
	result.Duration = time.Since(start).String()
	return result
}

func firstDiffLine(expected, actual []byte) int {
	expectedLines := bytes.Split(expected, []byte("\n"))
	actualLines := bytes.Split(actual, []byte("\n"))
	for i := 0; i < len(expectedLines) && i < len(actualLines); i++ {
		if !bytes.Equal(expectedLines[i], actualLines[i]) {
			return i + 1
		}
	}
	if len(expectedLines) < len(actualLines) {
		return len(expectedLines)
	}
	return len(actualLines)
}

func main() {
	var results []CheckResult
	outputDir := "./check_output"
	defer func() {
		if r := recover(); r != nil {
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			jsonPath := filepath.Join(outputDir, fmt.Sprintf("mjschema_check_report_panic_%s.json", timestamp))
			htmlPath := filepath.Join(outputDir, fmt.Sprintf("mjschema_check_report_panic_%s.html", timestamp))
			jsonData, _ := json.MarshalIndent(results, "", "  ")
			os.WriteFile(jsonPath, jsonData, 0644)
			writeHTMLReport(htmlPath, results)
		}
	}()

	config := core.NewDefaultConfig()
	schemasDir := config.OutputDir
	if len(os.Args) > 1 {
		schemasDir = os.Args[1]
	}
	os.MkdirAll(outputDir, 0755)

	documents, skipped, err := buildDocuments(config)
	if err != nil {
		results = append(results, CheckResult{Artifact: "registry", Status: "error", Error: err.Error()})
		writeReports(outputDir, results)
		fmt.Printf("registry failed validation, see %s\n", outputDir)
		os.Exit(1)
	}
	for _, skip := range skipped {
		results = append(results, CheckResult{Artifact: skip.Component, Status: "error", Error: skip.Reason.Error()})
	}

	checks := []struct {
		filename string
		document any
	}{
		{config.SpecsFile, documents.Specs},
		{config.SchemaFile, documents.Full},
		{config.AISchemaFile, documents.AI},
	}
	for _, check := range checks {
		results = append(results, checkArtifact(schemasDir, check.filename, check.document))
	}

	writeReports(outputDir, results)

	attention := 0
	for _, r := range results {
		if r.Status != "match" {
			attention++
		}
	}
	if attention == 0 {
		fmt.Println("all artifacts match the registry")
	} else {
		fmt.Printf("%d of %d checks need attention, see %s\n", attention, len(results), outputDir)
	}
}

func writeReports(outputDir string, results []CheckResult) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("mjschema_check_report_final_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("mjschema_check_report_final_%s.html", timestamp))
	jsonData, _ := json.MarshalIndent(results, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, results)
}

func writeHTMLReport(path string, results []CheckResult) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>MJSchema Check Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.drift{background:#fdd;}tr.match{background:#dfd;}tr.missing{background:#ffd;}tr.error{background:#fdf;}</style></head><body>")
	f.WriteString("<h1>MJSchema Check Report</h1><table><tr><th>Artifact</th><th>Path</th><th>Status</th><th>Error</th><th>Expected Bytes</th><th>Actual Bytes</th><th>Detail</th><th>Duration</th></tr>")
	for _, r := range results {
		rowClass := r.Status
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td><pre>%s</pre></td><td>%s</td></tr>", rowClass, r.Artifact, r.Path, r.Status, htmlEscape(r.Error), r.Expected, r.Actual, htmlEscape(r.Detail), r.Duration))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
