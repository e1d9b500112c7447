package extractors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/extract"
)

var quotedTitleWord = regexp.MustCompile(`[„"“]([^"„“”]+)["“”]`)

// Fallback handles pages whose type stayed unset after classification. It
// digs the headword out with a cascade of strategies and reports translation
// and examples only.
type Fallback struct{}

func (e *Fallback) CanHandle(t models.VocabularyType) bool { return t == models.TypeUnset }

func (e *Fallback) Parse(html string) (models.Record, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	return models.UnknownRecord{
		BaseRecord: models.BaseRecord{
			Word:        fallbackWord(doc),
			Translated:  extract.Translation(doc),
			ExampleList: extract.Examples(doc),
		},
	}, nil
}

func fallbackWord(doc *goquery.Document) string {
	if word := baseForm(doc); word != "" {
		return word
	}
	if word := strings.TrimSpace(doc.Find(selStemForms).Find("b").First().Text()); word != "" {
		return word
	}
	title := doc.Find("title").First().Text()
	if m := quotedTitleWord.FindStringSubmatch(title); len(m) > 1 {
		if word := strings.TrimSpace(m[1]); word != "" {
			return word
		}
	}
	if word := headingToken(doc); word != "" {
		return word
	}
	search := doc.Find(`input[type="search"], input[name="w"]`).First()
	if value, ok := search.Attr("value"); ok {
		if word := strings.TrimSpace(value); word != "" {
			return word
		}
	}
	return models.SentinelUnknown
}
