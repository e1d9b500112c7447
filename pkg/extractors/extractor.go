// Package extractors turns dictionary page HTML into typed vocabulary
// records. Each word type has its own extractor; parsing rules are tied to
// one site's markup and validated against frozen fixtures, never live pages.
package extractors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
)

// ErrNoExtractor signals a dispatch gap for a vocabulary type. The type enum
// is closed and the fallback extractor accepts unset, so hitting this is a
// programming defect, not bad input.
var ErrNoExtractor = errors.New("no extractor registered for vocabulary type")

// Extractor is the capability set every per-type extractor implements.
type Extractor interface {
	CanHandle(t models.VocabularyType) bool
	Parse(html string) (models.Record, error)
}

// Registry returns the extractors in dispatch order. The fallback extractor
// is registered last and only accepts the unset type.
func Registry() []Extractor {
	return []Extractor{
		&Verb{},
		&Noun{},
		&Adjective{},
		&Fallback{},
	}
}

// ForType scans the registry for an extractor that handles t.
func ForType(t models.VocabularyType) (Extractor, error) {
	for _, e := range Registry() {
		if e.CanHandle(t) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoExtractor, t)
}

// Page regions shared by the extractors.
const (
	selBaseForm  = `p.vGrnd, #grundform`
	selStemForms = `p.vStm, #vStckFrm`
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	wordToken     = regexp.MustCompile(`[A-Za-zÄÖÜäöüß][A-Za-zÄÖÜäöüß-]*`)
)

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return doc, nil
}

// baseForm reads the dedicated base-form element with runs of whitespace
// collapsed to single spaces. Nouns keep the space between article and word.
func baseForm(doc *goquery.Document) string {
	text := doc.Find(selBaseForm).First().Text()
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// headingToken returns the first word-like token of the first heading.
func headingToken(doc *goquery.Document) string {
	return wordToken.FindString(doc.Find("h1").First().Text())
}

func normalizeCell(s *goquery.Selection) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s.Text(), " "))
}

// tableAfterHeading finds the first table between a heading whose text
// contains substr (case-insensitive) and the next heading. Exclusions guard
// against substring collisions ("Perfect" inside "Imperfect").
func tableAfterHeading(doc *goquery.Document, substr string, exclude ...string) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		heading := strings.ToLower(h.Text())
		if !strings.Contains(heading, substr) {
			return true
		}
		for _, ex := range exclude {
			if strings.Contains(heading, ex) {
				return true
			}
		}
		block := h.NextUntil("h2, h3")
		t := block.Filter("table").First()
		if t.Length() == 0 {
			t = block.Find("table").First()
		}
		if t.Length() > 0 {
			table = t
			return false
		}
		return true
	})
	return table
}

// rowCells returns the normalized cell texts of a table row.
func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, normalizeCell(cell))
	})
	return cells
}

// firstDataRow returns the cells of the first row with at least two columns.
func firstDataRow(table *goquery.Selection) []string {
	var cells []string
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		c := rowCells(tr)
		if len(c) >= 2 {
			cells = c
			return false
		}
		return true
	})
	return cells
}
