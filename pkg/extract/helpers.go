// Package extract holds the word-type-agnostic extraction helpers shared by
// every extractor. Both helpers are pure functions of the parsed document:
// two extractors handed the same document must report identical translation
// and example text. That behavioral identity is a contract.
package extract

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"

	"github.com/mhofer/wortkarten/models"
)

// Regions of the source page the helpers read from.
const (
	selEnglishSpans   = `span[lang="en"]`
	selDefinitionInfo = `.rInf, #vStckKrz`
	selExampleList    = `.rBsp li, #vStckBsp li`
	selNoteRegion     = `.rNt, #vStckNt`
)

// Example candidates outside this length range are navigation debris or
// whole paragraphs, not single example sentences.
const (
	minExampleLen = 10
	maxExampleLen = 200
)

var (
	flagMarkers = []string{"\U0001F1EC\U0001F1E7", "\U0001F1FA\U0001F1F8", "English:"}

	collapseNewlines = regexp.MustCompile(`\s*\n\s*`)
	doubleNewline    = regexp.MustCompile(`\n\s*\n`)
	noteSentence     = regexp.MustCompile(`«([^»]+)»`)
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// englishDetector is shared and built lazily; constructing lingua models is
// expensive.
func englishDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.German).
			Build()
	})
	return detector
}

func isEnglish(text string) bool {
	lang, ok := englishDetector().DetectLanguageOf(text)
	return ok && lang == lingua.English
}

// Translation returns the first explicitly English-marked span, falling back
// to a flag-delimited English segment inside the definition info region, and
// finally to the sentinel.
func Translation(doc *goquery.Document) string {
	var first string
	doc.Find(selEnglishSpans).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			first = text
			return false
		}
		return true
	})
	if first != "" {
		return first
	}

	info := doc.Find(selDefinitionInfo).Text()
	for _, marker := range flagMarkers {
		_, after, found := strings.Cut(info, marker)
		if !found {
			continue
		}
		segment := after
		if i := strings.IndexAny(segment, "\n"); i >= 0 {
			segment = segment[:i]
		}
		segment = strings.TrimSpace(strings.Trim(strings.TrimSpace(segment), ",;"))
		if segment != "" && isEnglish(segment) {
			return segment
		}
	}

	return models.SentinelTranslationNotFound
}

// Examples scans the example-list region for German example sentences.
//
// A genuine example block on the source site pairs the German sentence with
// an inline translation on a following line, so candidates must contain a
// blank-line separation to qualify; the German portion before the flag or
// "English:" marker is kept and its residual newlines collapsed. When the
// list yields nothing, a single «quoted» sentence from the note region is
// accepted. The result is never empty: the sentinel list stands in.
func Examples(doc *goquery.Document) []string {
	var examples []string
	doc.Find(selExampleList).Each(func(_ int, s *goquery.Selection) {
		raw := s.Text()
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) <= minExampleLen || len(trimmed) >= maxExampleLen {
			return
		}
		if !doubleNewline.MatchString(trimmed) {
			return
		}

		german := trimmed
		for _, marker := range flagMarkers {
			if i := strings.Index(german, marker); i >= 0 {
				german = german[:i]
			}
		}
		german = strings.TrimSpace(collapseNewlines.ReplaceAllString(german, " "))
		if german != "" {
			examples = append(examples, german)
		}
	})
	if len(examples) > 0 {
		return examples
	}

	note := doc.Find(selNoteRegion).Text()
	if m := noteSentence.FindStringSubmatch(note); len(m) > 1 {
		if sentence := strings.TrimSpace(m[1]); sentence != "" {
			return []string{sentence}
		}
	}

	return []string{models.SentinelExampleNotFound}
}
