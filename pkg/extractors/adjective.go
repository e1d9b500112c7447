package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/extract"
)

// Container of the up-to-three declension table blocks. Source order is
// significant: the blocks are strong, weak, mixed, in that order.
const selDeclensionBlocks = `.vDkl div.vTbl, #vAdjFlx div.vTbl`

var (
	declensionGenders = []string{"masculine", "feminine", "neutral", "plural"}
	declensionCases   = []string{"nominative", "genitive", "dative", "accusative"}
)

// Adjective extracts comparison forms and declension tables from an
// adjective page.
type Adjective struct{}

func (e *Adjective) CanHandle(t models.VocabularyType) bool { return t == models.TypeAdjective }

func (e *Adjective) Parse(html string) (models.Record, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	word := baseForm(doc)
	if word == "" {
		word = strings.TrimSpace(doc.Find(selStemForms).Find("b").First().Text())
	}
	if word == "" {
		word = headingToken(doc)
	}
	if word == "" {
		word = models.SentinelUnknown
	}

	return models.AdjectiveRecord{
		BaseRecord: models.BaseRecord{
			Word:        word,
			Translated:  extract.Translation(doc),
			ExampleList: extract.Examples(doc),
		},
		Comparison: comparison(doc),
		Declension: declension(doc),
	}, nil
}

// comparison splits the stem-forms text on the middle dot into positive,
// comparative and superlative. When the separator split yields fewer than
// three parts the bolded sub-elements are read positionally instead.
func comparison(doc *goquery.Document) models.Comparison {
	cmp := models.Comparison{
		Positive:    models.SentinelUnknown,
		Comparative: models.SentinelUnknown,
		Superlative: models.SentinelUnknown,
	}

	region := doc.Find(selStemForms).First()
	parts := strings.Split(region.Text(), "·")
	if len(parts) >= 3 {
		cmp.Positive = strings.TrimSpace(parts[0])
		cmp.Comparative = strings.TrimSpace(parts[1])
		cmp.Superlative = strings.TrimPrefix(strings.TrimSpace(parts[2]), "am ")
		return cmp
	}

	fields := []*string{&cmp.Positive, &cmp.Comparative, &cmp.Superlative}
	region.Find("b").EachWithBreak(func(i int, b *goquery.Selection) bool {
		if i >= len(fields) {
			return false
		}
		text := strings.TrimSpace(b.Text())
		if text != "" {
			*fields[i] = strings.TrimPrefix(text, "am ")
		}
		return true
	})
	return cmp
}

// declension reads up to three table blocks, interpreted positionally as
// strong, weak and mixed.
func declension(doc *goquery.Document) models.Declension {
	decl := models.Declension{
		Strong: map[string]string{},
		Weak:   map[string]string{},
		Mixed:  map[string]string{},
	}
	tables := []map[string]string{decl.Strong, decl.Weak, decl.Mixed}

	doc.Find(selDeclensionBlocks).EachWithBreak(func(i int, block *goquery.Selection) bool {
		if i >= len(tables) {
			return false
		}
		parseDeclensionBlock(block, tables[i])
		return true
	})
	return decl
}

// parseDeclensionBlock groups a block's rows under the most recent gender
// heading and maps each recognized case row to the form in its last data
// cell. Last cell, not first after the label: weak and mixed rows prepend an
// article column that strong rows lack.
func parseDeclensionBlock(block *goquery.Selection, out map[string]string) {
	gender := ""
	block.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return
		}

		if g := matchTerm(cells[0], declensionGenders); len(cells) == 1 && g != "" {
			gender = g
			return
		}
		if gender == "" {
			return
		}

		c := matchTerm(cells[0], declensionCases)
		if c == "" {
			return
		}
		form := normalizeCell(tr.Find("td").Last())
		if form != "" {
			out[models.DeclensionKey(gender, c)] = form
		}
	})
}

// matchTerm returns the first term contained in the text, case-insensitively.
func matchTerm(text string, terms []string) string {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return term
		}
	}
	return ""
}
