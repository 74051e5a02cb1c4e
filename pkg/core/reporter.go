/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for MJSchema generator
progress reporting. Allows the generator to notify listeners of component
assembly and artifact events without coupling the pipeline to any output.
*/

package core

import (
	"github.com/sirupsen/logrus"
)

// Reporter defines the interface for generation progress hooks.
// Allows the generator to notify listeners of component and artifact events.
type Reporter interface {
	// OnComponentBuilt is called after a component's fragments are assembled.
	OnComponentBuilt(name string, attributes int)
	// OnComponentSkipped is called when a component is dropped from the run.
	OnComponentSkipped(name string, reason error)
	// OnArtifactWritten is called after an artifact lands on disk.
	OnArtifactWritten(name string, path string)
}

// LoggerReporter logs generation events using the standard logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnComponentBuilt logs one assembled component.
func (r *LoggerReporter) OnComponentBuilt(name string, attributes int) {
	r.logger.WithFields(logrus.Fields{"component": name, "attributes": attributes}).Debug("Component assembled")
}

// OnComponentSkipped logs a dropped component at warning level.
func (r *LoggerReporter) OnComponentSkipped(name string, reason error) {
	r.logger.WithFields(logrus.Fields{"component": name, "reason": reason}).Warn("Component skipped")
}

// OnArtifactWritten logs a written artifact.
func (r *LoggerReporter) OnArtifactWritten(name string, path string) {
	r.logger.WithFields(logrus.Fields{"artifact": name, "path": path}).Info("Artifact written")
}
