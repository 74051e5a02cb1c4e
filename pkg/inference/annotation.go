/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: annotation.go
Description: Parser for the attribute type-annotation mini-language used by the
component packages (enum(...), unit(...), unit(...){m,n}, boolean, integer,
color, free strings). Deliberately heuristic: prefix/substring checks plus a
single-level parenthesis extraction, never a formal grammar.
*/

package inference

import (
	"strings"
)

// AnnotationKind classifies a parsed type annotation
type AnnotationKind int

const (
	// KindNone marks an absent annotation
	KindNone AnnotationKind = iota
	// KindEnum marks enum(v1,v2,...)
	KindEnum
	// KindUnit marks unit(u1,u2,...) with or without a multiplicity suffix
	KindUnit
	// KindBoolean marks the literal annotation "boolean"
	KindBoolean
	// KindInteger marks the literal annotation "integer"
	KindInteger
	// KindColor marks the literal annotation "color"
	KindColor
	// KindOther marks any other free string, including malformed enum/unit forms
	KindOther
)

// Annotation is the parsed form of a type-annotation string
type Annotation struct {
	Raw      string
	Kind     AnnotationKind
	Values   []string // Enum literals, declaration order, untrimmed
	Units    []string // Unit tokens, declaration order, untrimmed
	Repeated bool     // A '{' anywhere in a unit annotation selects the repeated form
}

// ParseAnnotation classifies a raw annotation string. It never fails: any
// string it cannot make sense of comes back as KindOther and the caller
// falls through to the name-based heuristics.
func ParseAnnotation(raw string) Annotation {
	ann := Annotation{Raw: raw, Kind: KindOther}

	switch {
	case raw == "":
		ann.Kind = KindNone
	case raw == "boolean":
		ann.Kind = KindBoolean
	case raw == "integer":
		ann.Kind = KindInteger
	case raw == "color":
		ann.Kind = KindColor
	case strings.HasPrefix(raw, "enum("):
		inner, ok := parenContent(raw)
		if !ok {
			break
		}
		ann.Kind = KindEnum
		// Split only: the upstream declarations carry no whitespace worth
		// trimming, and value parity matters more than tidiness.
		ann.Values = strings.Split(inner, ",")
	case strings.HasPrefix(raw, "unit("):
		inner, ok := parenContent(raw)
		if !ok {
			break
		}
		ann.Kind = KindUnit
		if inner != "" {
			ann.Units = strings.Split(inner, ",")
		}
		ann.Repeated = strings.Contains(raw, "{")
	}

	return ann
}

// parenContent extracts the text between the first '(' and the next ')'.
// Single level only; the mini-language never nests.
func parenContent(s string) (string, bool) {
	open := strings.Index(s, "(")
	if open < 0 {
		return "", false
	}
	rest := s[open+1:]
	end := strings.Index(rest, ")")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
