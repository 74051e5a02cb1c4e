/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Core interfaces for documentation cross-checking. Defines the
attribute extractor and the headless page renderer used for live fetches of
JavaScript-rendered documentation pages.
*/

package docs

import (
	"context"
	"io"
)

// DocumentedAttribute is one row of a documentation attribute table
type DocumentedAttribute struct {
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default,omitempty"`
}

// AttributeExtractor parses documentation HTML into per-component
// attribute tables
type AttributeExtractor interface {
	Extract(r io.Reader) (map[string][]DocumentedAttribute, error)
}

// PageRenderer abstracts the headless browser used for live fetches
type PageRenderer interface {
	Start(ctx context.Context) error
	Stop() error
	FetchPage(url string) (string, error)
}
