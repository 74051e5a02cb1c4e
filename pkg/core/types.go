/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the MJSchema generator. Defines the run statistics
and the run report structure written next to the generated artifacts.
*/

package core

import (
	"time"
)

// GeneratorStats tracks the outcome of one generator run
type GeneratorStats struct {
	Components       int           `json:"components"`        // Components emitted into the documents
	Skipped          int           `json:"skipped"`           // Components dropped after assembly failures
	Attributes       int           `json:"attributes"`        // Attribute schemas inferred
	Enums            int           `json:"enums"`             // Fragments constrained by an enum
	Patterns         int           `json:"patterns"`          // Fragments constrained by a regex pattern
	FreeStrings      int           `json:"free_strings"`      // Fragments with neither enum nor pattern
	Defaults         int           `json:"defaults"`          // Fragments carrying a default value
	AIComponents     int           `json:"ai_components"`     // Components surviving the restricted variant
	ArtifactsWritten int           `json:"artifacts_written"` // Files written to the output directory
	StartTime        time.Time     `json:"start_time"`        // When the run started
	Duration         time.Duration `json:"duration"`          // Total run duration
}

// RunReport is the optional JSON report written alongside the artifacts
type RunReport struct {
	RunID       string          `json:"run_id"`                       // Unique id of this run
	GeneratedAt time.Time       `json:"generated_at"`                 // Completion timestamp
	Stats       *GeneratorStats `json:"stats"`                        // Run statistics
	Skipped     []SkipRecord    `json:"skipped_components,omitempty"` // Components left out and why
	Artifacts   []string        `json:"artifacts"`                    // Paths of the written files
}

// SkipRecord describes one skipped component in the run report
type SkipRecord struct {
	Component string `json:"component"`
	Reason    string `json:"reason"`
}
