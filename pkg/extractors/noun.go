package extractors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/extract"
)

var pluralParagraph = regexp.MustCompile(`(?i)^plural[:\s]+(.+)$`)

// Noun extracts article, headword and plural form from a noun page.
type Noun struct{}

func (e *Noun) CanHandle(t models.VocabularyType) bool { return t == models.TypeNoun }

func (e *Noun) Parse(html string) (models.Record, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	// The base form prints article and word together ("das Haus"); the first
	// space splits them. No space means the article is missing, not the word.
	base := baseForm(doc)
	article := models.SentinelArticleNotFound
	word := base
	if before, after, found := strings.Cut(base, " "); found {
		article = before
		word = after
	}
	if word == "" {
		word = headingToken(doc)
	}
	if word == "" {
		word = models.SentinelUnknown
	}

	return models.NounRecord{
		BaseRecord: models.BaseRecord{
			Word:        word,
			Translated:  extract.Translation(doc),
			ExampleList: extract.Examples(doc),
		},
		Article: article,
		Plural:  pluralForm(doc),
	}, nil
}

// pluralForm scans paragraphs for the "Plural: ..." declaration, newlines
// collapsed to spaces.
func pluralForm(doc *goquery.Document) string {
	plural := models.SentinelPluralNotFound
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := normalizeCell(p)
		if m := pluralParagraph.FindStringSubmatch(text); len(m) > 1 {
			if form := strings.TrimSpace(m[1]); form != "" {
				plural = form
				return false
			}
		}
		return true
	})
	return plural
}
