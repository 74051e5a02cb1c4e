/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Utility functions for log management in the MJSchema generator.
Provides retention cleanup and statistics for the per-run log files.
*/

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LogManager provides retention management for per-run log files
type LogManager struct {
	logDir   string
	maxFiles int
}

// NewLogManager creates a new log manager
func NewLogManager(logDir string, maxFiles int) *LogManager {
	return &LogManager{
		logDir:   logDir,
		maxFiles: maxFiles,
	}
}

// CleanupOldLogs removes old log files based on retention policy
func (lm *LogManager) CleanupOldLogs() error {
	files, err := filepath.Glob(filepath.Join(lm.logDir, "mjschema_*.log"))
	if err != nil {
		return fmt.Errorf("failed to glob log files: %w", err)
	}

	if len(files) <= lm.maxFiles {
		return nil
	}

	// Sort files by modification time (oldest first)
	sort.Slice(files, func(i, j int) bool {
		statI, _ := os.Stat(files[i])
		statJ, _ := os.Stat(files[j])
		return statI.ModTime().Before(statJ.ModTime())
	})

	// Remove oldest files
	filesToRemove := len(files) - lm.maxFiles
	for i := 0; i < filesToRemove; i++ {
		if err := os.Remove(files[i]); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", files[i], err)
		}
	}

	return nil
}

// GetLogStats returns statistics about log files
func (lm *LogManager) GetLogStats() (*LogStats, error) {
	files, err := filepath.Glob(filepath.Join(lm.logDir, "mjschema_*.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}

	stats := &LogStats{
		TotalFiles: len(files),
		TotalSize:  0,
		OldestFile: time.Now(),
		NewestFile: time.Time{},
	}

	for _, file := range files {
		stat, err := os.Stat(file)
		if err != nil {
			continue
		}

		stats.TotalSize += stat.Size()

		if stat.ModTime().Before(stats.OldestFile) {
			stats.OldestFile = stat.ModTime()
		}

		if stat.ModTime().After(stats.NewestFile) {
			stats.NewestFile = stat.ModTime()
		}
	}

	return stats, nil
}

// LogStats holds statistics about log files
type LogStats struct {
	TotalFiles int       `json:"total_files"`
	TotalSize  int64     `json:"total_size"`
	OldestFile time.Time `json:"oldest_file"`
	NewestFile time.Time `json:"newest_file"`
}
