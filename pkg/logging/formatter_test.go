/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter_test.go
Description: Tests for the custom log formatters. Tests header layout, color
toggling, value truncation, and the generator-specific message prefixes.
*/

package logging_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kleascm/mjschema/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeEntry builds a logrus entry for direct formatter calls
func makeEntry(level logrus.Level, message string, fields logrus.Fields) *logrus.Entry {
	entry := logrus.NewEntry(logrus.New())
	entry.Time = time.Date(2026, 8, 21, 12, 30, 45, 0, time.UTC)
	entry.Level = level
	entry.Message = message
	entry.Data = fields
	return entry
}

// TestCustomFormatterLayout tests the plain header-message-fields layout
func TestCustomFormatterLayout(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: false, Caller: false, Colors: false}

	out, err := formatter.Format(makeEntry(logrus.InfoLevel, "hello", logrus.Fields{"key": "value"}))
	require.NoError(t, err)
	assert.Equal(t, "INFO hello key=value\n", string(out))

	out, err = formatter.Format(makeEntry(logrus.WarnLevel, "careful", nil))
	require.NoError(t, err)
	assert.Equal(t, "WARNING careful\n", string(out))
}

// TestCustomFormatterTimestamp tests the timestamp header
func TestCustomFormatterTimestamp(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: true, Colors: false}

	out, err := formatter.Format(makeEntry(logrus.InfoLevel, "stamped", nil))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-21 12:30:45.000 INFO stamped\n", string(out))
}

// TestCustomFormatterColors tests ANSI escapes when colors are enabled
func TestCustomFormatterColors(t *testing.T) {
	formatter := &logging.CustomFormatter{Colors: true}

	out, err := formatter.Format(makeEntry(logrus.ErrorLevel, "red alert", logrus.Fields{"key": "value"}))
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "\033[31mERROR\033[0m", "error level renders red")
	assert.Contains(t, text, "\033[0m")

	plain := &logging.CustomFormatter{Colors: false}
	out, err = plain.Format(makeEntry(logrus.ErrorLevel, "red alert", nil))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\033[")
}

// TestCustomFormatterValueTruncation tests long and binary field values
func TestCustomFormatterValueTruncation(t *testing.T) {
	formatter := &logging.CustomFormatter{Colors: false}

	long := strings.Repeat("a", 70)
	out, err := formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{"text": long}))
	require.NoError(t, err)
	assert.Contains(t, string(out), strings.Repeat("a", 60)+"...")
	assert.NotContains(t, string(out), strings.Repeat("a", 61))

	out, err = formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{"blob": make([]byte, 30)}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "[30 bytes]")

	out, err = formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{"wait": 1500 * time.Millisecond}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "wait=1.5s")
}

// TestGeneratorFormatterPrefixes tests the message-derived prefixes
func TestGeneratorFormatterPrefixes(t *testing.T) {
	formatter := &logging.GeneratorFormatter{
		CustomFormatter: logging.CustomFormatter{Colors: false},
	}

	cases := map[string]string{
		"Component assembled":                "[BUILD]",
		"Component skipped":                  "[SKIP]",
		"Artifact written":                   "[WRITE]",
		"Attribute inferred":                 "[INFER]",
		"Documentation drift detected":       "[DRIFT]",
		"Generation statistics":              "[STATS]",
		"Registry validated":                 "[REGISTRY]",
		"Generator initialized successfully": "[ENGINE]",
	}
	for message, prefix := range cases {
		out, err := formatter.Format(makeEntry(logrus.InfoLevel, message, nil))
		require.NoError(t, err)
		assert.Contains(t, string(out), prefix+" "+message, "prefix for %q", message)
	}

	out, err := formatter.Format(makeEntry(logrus.InfoLevel, "nothing special", nil))
	require.NoError(t, err)
	assert.Equal(t, "INFO nothing special\n", string(out))
}

// TestGeneratorFormatterValues tests the key-aware value formatting
func TestGeneratorFormatterValues(t *testing.T) {
	formatter := &logging.GeneratorFormatter{
		CustomFormatter: logging.CustomFormatter{Colors: false},
	}

	out, err := formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{
		"pattern": strings.Repeat("p", 50),
	}))
	require.NoError(t, err)
	assert.Contains(t, string(out), strings.Repeat("p", 40)+"...")

	out, err = formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{
		"run_id": "0b1c2d3e-4f56-7890-abcd-ef0123456789",
	}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "run_id=0b1c2d3e...")

	out, err = formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{
		"size_bytes": 2048,
	}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "size_bytes=2048 bytes")

	out, err = formatter.Format(makeEntry(logrus.InfoLevel, "msg", logrus.Fields{
		"uptime": 2 * time.Second,
	}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "uptime=2s")
}
