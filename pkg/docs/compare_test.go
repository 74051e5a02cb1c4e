/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare_test.go
Description: Unit tests for the documentation drift comparison. Covers drift
in both directions, unknown components, deduplication, partial-page tolerance,
and the extractor-to-comparison round trip.
*/

package docs_test

import (
	"strings"
	"testing"

	"github.com/kleascm/mjschema/pkg/docs"
	"github.com/kleascm/mjschema/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentedSpacer returns a complete documentation set for mj-spacer
func documentedSpacer() []docs.DocumentedAttribute {
	names := []string{
		"container-background-color",
		"css-class",
		"height",
		"padding",
		"padding-bottom",
		"padding-left",
		"padding-right",
		"padding-top",
	}
	attrs := make([]docs.DocumentedAttribute, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, docs.DocumentedAttribute{Name: name})
	}
	return attrs
}

// TestCompareClean tests a documentation set that matches the registry
func TestCompareClean(t *testing.T) {
	report := docs.Compare(registry.New(), map[string][]docs.DocumentedAttribute{
		"mj-spacer": documentedSpacer(),
	})

	assert.True(t, report.Clean())
	assert.Equal(t, 1, report.Compared)
	assert.Empty(t, report.Drifts)
	assert.Empty(t, report.UnknownComponents)
}

// TestCompareUndeclared tests attributes the documentation invents
func TestCompareUndeclared(t *testing.T) {
	documented := map[string][]docs.DocumentedAttribute{
		"mj-spacer": append(documentedSpacer(),
			docs.DocumentedAttribute{Name: "sparkle"},
			docs.DocumentedAttribute{Name: "glitter"},
		),
	}

	report := docs.Compare(registry.New(), documented)
	assert.False(t, report.Clean())
	require.Len(t, report.Drifts, 1)

	drift := report.Drifts[0]
	assert.Equal(t, "mj-spacer", drift.Component)
	assert.Equal(t, []string{"glitter", "sparkle"}, drift.Undeclared, "sorted output")
	assert.Empty(t, drift.Undocumented)
}

// TestCompareUndocumented tests declared attributes the documentation misses
func TestCompareUndocumented(t *testing.T) {
	documented := map[string][]docs.DocumentedAttribute{
		"mj-spacer": {{Name: "height"}},
	}

	report := docs.Compare(registry.New(), documented)
	require.Len(t, report.Drifts, 1)

	drift := report.Drifts[0]
	assert.Empty(t, drift.Undeclared)
	assert.Equal(t, []string{
		"container-background-color",
		"css-class",
		"padding",
		"padding-bottom",
		"padding-left",
		"padding-right",
		"padding-top",
	}, drift.Undocumented)
}

// TestCompareUnknownComponent tests component names the registry lacks
func TestCompareUnknownComponent(t *testing.T) {
	documented := map[string][]docs.DocumentedAttribute{
		"mj-flying-saucer": {{Name: "altitude"}},
		"mj-spacer":        documentedSpacer(),
	}

	report := docs.Compare(registry.New(), documented)
	assert.False(t, report.Clean())
	assert.Equal(t, 1, report.Compared, "unknown components are not compared")
	assert.Equal(t, []string{"mj-flying-saucer"}, report.UnknownComponents)
	assert.Empty(t, report.Drifts)
}

// TestCompareIgnoresAbsentComponents tests that registry components missing
// from the documentation are never flagged; saved pages are partial
func TestCompareIgnoresAbsentComponents(t *testing.T) {
	report := docs.Compare(registry.New(), map[string][]docs.DocumentedAttribute{
		"mj-spacer": documentedSpacer(),
	})

	assert.Equal(t, 1, report.Compared)
	for _, drift := range report.Drifts {
		assert.Equal(t, "mj-spacer", drift.Component)
	}
}

// TestCompareDeduplicatesDocumentedRows tests repeated rows across merged tables
func TestCompareDeduplicatesDocumentedRows(t *testing.T) {
	documented := map[string][]docs.DocumentedAttribute{
		"mj-spacer": append(documentedSpacer(), documentedSpacer()...),
	}

	report := docs.Compare(registry.New(), documented)
	assert.True(t, report.Clean(), "duplicate documentation rows are not drift")
}

// TestCompareEmptyDocumentation tests the degenerate input
func TestCompareEmptyDocumentation(t *testing.T) {
	report := docs.Compare(registry.New(), map[string][]docs.DocumentedAttribute{})
	assert.True(t, report.Clean())
	assert.Equal(t, 0, report.Compared)
}

// TestCompareMultipleComponentsSorted tests deterministic report order
func TestCompareMultipleComponentsSorted(t *testing.T) {
	documented := map[string][]docs.DocumentedAttribute{
		"mj-zebra":  {{Name: "stripes"}},
		"mj-alpaca": {{Name: "wool"}},
		"mj-spacer": {{Name: "height"}, {Name: "levitation"}},
	}

	report := docs.Compare(registry.New(), documented)
	assert.Equal(t, []string{"mj-alpaca", "mj-zebra"}, report.UnknownComponents)
	require.Len(t, report.Drifts, 1)
	assert.Contains(t, report.Drifts[0].Undeclared, "levitation")
}

// TestExtractThenCompare tests the full verification path over a fixture page
func TestExtractThenCompare(t *testing.T) {
	page := `
<h2>mj-spacer</h2>
<table>
  <thead><tr><th>attribute</th><th>description</th><th>default value</th></tr></thead>
  <tbody>
    <tr><td>container-background-color</td><td>inner background</td><td>n/a</td></tr>
    <tr><td>css-class</td><td>class names</td><td>n/a</td></tr>
    <tr><td>height</td><td>spacer height</td><td>20px</td></tr>
    <tr><td>padding</td><td>supports up to 4 values</td><td>none</td></tr>
    <tr><td>padding-bottom</td><td>bottom offset</td><td>n/a</td></tr>
    <tr><td>padding-left</td><td>left offset</td><td>n/a</td></tr>
    <tr><td>padding-right</td><td>right offset</td><td>n/a</td></tr>
    <tr><td>padding-top</td><td>top offset</td><td>n/a</td></tr>
  </tbody>
</table>`

	documented, err := docs.NewExtractor().Extract(strings.NewReader(page))
	require.NoError(t, err)

	report := docs.Compare(registry.New(), documented)
	assert.True(t, report.Clean(), "the fixture mirrors the registry tables")
	assert.Equal(t, 1, report.Compared)
}
