package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/extract"
)

// Verb extracts conjugation data from a verb page.
type Verb struct{}

func (e *Verb) CanHandle(t models.VocabularyType) bool { return t == models.TypeVerb }

func (e *Verb) Parse(html string) (models.Record, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	// Infinitives never contain spaces; the base-form element soft-wraps
	// long words, so interior whitespace is stripped entirely.
	word := strings.ReplaceAll(baseForm(doc), " ", "")
	if word == "" {
		word = headingToken(doc)
	}
	if word == "" {
		word = models.SentinelUnknown
	}

	return models.VerbRecord{
		BaseRecord: models.BaseRecord{
			Word:        word,
			Translated:  extract.Translation(doc),
			ExampleList: extract.Examples(doc),
		},
		Conjugations: presentConjugations(doc),
		SimplePast:   simplePast(doc),
		Perfekt:      perfekt(doc),
	}, nil
}

// presentConjugations reads the table under the "Present" heading. Every slot
// starts at the empty string; a row populates its slot only when the first
// column exactly matches one of the six pronoun labels.
func presentConjugations(doc *goquery.Document) map[string]string {
	conjugations := make(map[string]string, len(models.ConjugationPersons))
	for _, person := range models.ConjugationPersons {
		conjugations[person] = ""
	}

	table := tableAfterHeading(doc, "present")
	if table == nil {
		return conjugations
	}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) < 2 {
			return
		}
		if _, ok := conjugations[cells[0]]; ok {
			conjugations[cells[0]] = cells[1]
		}
	})
	return conjugations
}

// simplePast is the second column of the first row under "Imperfect".
func simplePast(doc *goquery.Document) string {
	table := tableAfterHeading(doc, "imperfect")
	if table == nil {
		return models.SentinelUnknown
	}
	cells := firstDataRow(table)
	if len(cells) < 2 || cells[1] == "" {
		return models.SentinelUnknown
	}
	return cells[1]
}

// perfekt joins everything after the pronoun column of the first row under
// "Perfect": auxiliary plus participle.
func perfekt(doc *goquery.Document) string {
	table := tableAfterHeading(doc, "perfect", "imperfect")
	if table == nil {
		return models.SentinelUnknown
	}
	cells := firstDataRow(table)
	if len(cells) < 2 {
		return models.SentinelUnknown
	}
	joined := strings.TrimSpace(strings.Join(cells[1:], " "))
	if joined == "" {
		return models.SentinelUnknown
	}
	return joined
}
