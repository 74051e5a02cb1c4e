/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Compares documented attribute tables against the registry and
reports drift in both directions: attributes the documentation lists but the
registry never declares, and declared attributes the documentation misses.
*/

package docs

import (
	"sort"

	"github.com/kleascm/mjschema/pkg/interfaces"
)

// Drift holds the attribute-level differences for one component
type Drift struct {
	Component    string   `json:"component"`
	Undeclared   []string `json:"undeclared,omitempty"`
	Undocumented []string `json:"undocumented,omitempty"`
}

// DriftReport is the result of one documentation comparison
type DriftReport struct {
	Compared          int      `json:"compared"`
	UnknownComponents []string `json:"unknown_components,omitempty"`
	Drifts            []Drift  `json:"drifts,omitempty"`
}

// Clean reports whether the comparison found no drift at all
func (r *DriftReport) Clean() bool {
	return len(r.Drifts) == 0 && len(r.UnknownComponents) == 0
}

// Compare checks documented attributes against the registry. Components the
// documentation never mentions are not flagged; saved pages are routinely
// partial. Documented components unknown to the registry are reported
// separately.
func Compare(source interfaces.ComponentSource, documented map[string][]DocumentedAttribute) *DriftReport {
	report := &DriftReport{}

	names := make([]string, 0, len(documented))
	for name := range documented {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		comp, ok := source.Component(name)
		if !ok {
			report.UnknownComponents = append(report.UnknownComponents, name)
			continue
		}
		report.Compared++

		declared := make(map[string]bool, len(comp.Attributes))
		for _, decl := range comp.Attributes {
			declared[decl.Name] = true
		}

		docSet := make(map[string]bool, len(documented[name]))
		for _, attr := range documented[name] {
			docSet[attr.Name] = true
		}

		drift := Drift{Component: name}
		for attr := range docSet {
			if !declared[attr] {
				drift.Undeclared = append(drift.Undeclared, attr)
			}
		}
		for _, decl := range comp.Attributes {
			if !docSet[decl.Name] {
				drift.Undocumented = append(drift.Undocumented, decl.Name)
			}
		}

		sort.Strings(drift.Undeclared)
		sort.Strings(drift.Undocumented)

		if len(drift.Undeclared) > 0 || len(drift.Undocumented) > 0 {
			report.Drifts = append(report.Drifts, drift)
		}
	}

	return report
}
