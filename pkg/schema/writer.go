/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Artifact writer for the generated documents. Ensures the output
directory exists and writes each document as JSON, pretty printed or compact.
Write failures are fatal to the run; no partial-write cleanup is attempted.
*/

package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists generated documents to the output directory
type Writer struct {
	outputDir string
	pretty    bool
}

// NewWriter creates a writer rooted at the output directory
func NewWriter(outputDir string, pretty bool) *Writer {
	return &Writer{outputDir: outputDir, pretty: pretty}
}

// Write serializes one document under the output directory and returns the
// path written
func (w *Writer) Write(filename string, document any) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(document, "", "  ")
	} else {
		data, err = json.Marshal(document)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}
