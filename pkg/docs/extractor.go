/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: extractor.go
Description: Extracts attribute tables from MJML documentation HTML using
goquery. Attributes a table to the nearest preceding mj-* heading and reads
rows by header position, tolerating the column variations across pages.
*/

package docs

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	componentNameRe = regexp.MustCompile(`mj-[a-z][a-z0-9-]*`)
	attributeNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Extractor parses documentation pages into attribute tables
type Extractor struct{}

// NewExtractor creates a new documentation extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns the documented attributes per
// component. Tables without an "attribute" column and tables with no
// preceding mj-* heading are ignored.
func (e *Extractor) Extract(r io.Reader) (map[string][]DocumentedAttribute, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse documentation HTML: %w", err)
	}

	documented := make(map[string][]DocumentedAttribute)
	component := ""

	// Headings and tables arrive in document order, so tracking the last
	// mj-* heading attributes each table to its component section.
	doc.Find("h1, h2, h3, h4, table").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) != "table" {
			if name := componentNameRe.FindString(sel.Text()); name != "" {
				component = name
			}
			return
		}

		if component == "" {
			return
		}

		attrs := e.parseTable(sel)
		if len(attrs) > 0 {
			documented[component] = append(documented[component], attrs...)
		}
	})

	return documented, nil
}

// tableColumns holds the cell index of each recognized header, -1 when absent
type tableColumns struct {
	attribute   int
	unit        int
	description int
	defaultVal  int
}

// parseTable reads one attribute table. Returns nil for tables that do not
// carry an attribute column.
func (e *Extractor) parseTable(tbl *goquery.Selection) []DocumentedAttribute {
	headerRow := tbl.Find("thead tr").First()
	headerInBody := false
	if headerRow.Length() == 0 {
		headerRow = tbl.Find("tr").First()
		headerInBody = true
	}

	cols := tableColumns{attribute: -1, unit: -1, description: -1, defaultVal: -1}
	headerRow.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		switch header := strings.ToLower(strings.TrimSpace(cell.Text())); {
		case strings.Contains(header, "attribute"):
			cols.attribute = i
		case strings.Contains(header, "unit"):
			cols.unit = i
		case strings.Contains(header, "description"):
			cols.description = i
		case strings.Contains(header, "default"):
			cols.defaultVal = i
		}
	})

	if cols.attribute < 0 {
		return nil
	}

	var attrs []DocumentedAttribute
	tbl.Find("tr").Each(func(i int, row *goquery.Selection) {
		if headerInBody && i == 0 {
			return // header row rendered with td cells
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return // header row
		}

		name := cellText(cells, cols.attribute)
		if !attributeNameRe.MatchString(name) {
			return
		}

		attrs = append(attrs, DocumentedAttribute{
			Name:        name,
			Unit:        cellText(cells, cols.unit),
			Description: cellText(cells, cols.description),
			Default:     cellText(cells, cols.defaultVal),
		})
	})

	return attrs
}

// cellText returns the trimmed text of the idx-th cell, or "" when the row
// is shorter than the header
func cellText(cells *goquery.Selection, idx int) string {
	if idx < 0 || idx >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(idx).Text())
}
