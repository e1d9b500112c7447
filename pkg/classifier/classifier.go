// Package classifier infers the grammatical category of a scraped dictionary
// page when the caller did not declare one.
//
// Methods run in strict precedence order; the first confident match wins and
// later methods are never consulted. Methods 1-4 key off page structure that
// the source site keeps stable; method 5 is a weighted regex fallback for
// pages where none of the structural anchors survive.
package classifier

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/wortkarten/models"
)

// Scan windows for the weighted fallback. Signals near the top of the
// document (title, canonical link, og tags) land in the head window; looser
// body phrasing gets the wider window.
const (
	fallbackHeadWindow = 3000
	fallbackBodyWindow = 5000
)

// Fallback signal weights. The values encode how unambiguous each signal is
// on the source site and must not be re-derived.
const (
	weightTitlePhrase = 10
	weightURLPath     = 8
	weightDescriptor  = 6
	weightVerbTerms   = 4
	weightNounTerms   = 3
	weightAdjTerms    = 4
	weightCaseCooccur = 2
)

// Method 4: the compact level/category declaration printed near the top of
// every entry page, e.g. "A1 · verb · irregular".
var declarationPattern = regexp.MustCompile(`(?i)A1\s*·\s*(adjective|verb|noun)\s*·`)

var (
	verbTitleRe      = regexp.MustCompile(`(?i)conjugation of the (german )?verb`)
	verbURLRe        = regexp.MustCompile(`(?i)/(verb|verben)/`)
	verbDescriptorRe = regexp.MustCompile(`(?i)(irregular|regular|strong|weak) verb`)
	verbTermsRe      = regexp.MustCompile(`(?i)\b(present tense|imperfect|perfect tense|auxiliary|participle)\b`)

	nounTitleRe      = regexp.MustCompile(`(?i)declension of the (german )?noun`)
	nounURLRe        = regexp.MustCompile(`(?i)/(noun|substantive)/`)
	nounDescriptorRe = regexp.MustCompile(`(?i)(masculine|feminine|neuter) noun`)
	nounTermsRe      = regexp.MustCompile(`(?i)\b(plural|singular|genitive)\b`)

	adjTitleRe      = regexp.MustCompile(`(?i)declension of the (german )?adjective`)
	adjURLRe        = regexp.MustCompile(`(?i)/(adjective|adjektive)/`)
	adjDescriptorRe = regexp.MustCompile(`(?i)(comparison forms|comparative and superlative)`)
	adjTermsRe      = regexp.MustCompile(`(?i)\b(comparative|superlative|positive form)\b`)

	declensionRe    = regexp.MustCompile(`(?i)\bdeclension\b`)
	caseTermRe      = regexp.MustCompile(`(?i)\b(nominative|genitive|dative|accusative)\b`)
	adjDeclensionRe = regexp.MustCompile(`(?i)(weak|strong|mixed) declension`)
)

// Classify determines the vocabulary type a page describes. It never fails:
// when no method produces a signal the result is models.TypeUnset, which
// routes the entry to the fallback extractor.
func Classify(html string) models.VocabularyType {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if t := fromBreadcrumb(doc); t != models.TypeUnset {
			return t
		}
		if t := fromTitle(doc); t != models.TypeUnset {
			return t
		}
		if t := fromFirstHeading(doc); t != models.TypeUnset {
			return t
		}
	}
	if m := declarationPattern.FindStringSubmatch(html); len(m) > 1 {
		switch strings.ToLower(m[1]) {
		case "adjective":
			return models.TypeAdjective
		case "verb":
			return models.TypeVerb
		case "noun":
			return models.TypeNoun
		}
	}
	return fromWeightedSignals(html)
}

// fromBreadcrumb checks the breadcrumb navigation for the category link text.
// Case-sensitive on purpose: these are literal link labels, not prose.
func fromBreadcrumb(doc *goquery.Document) models.VocabularyType {
	crumbs := doc.Find("nav, ul.breadcrumb, .breadcrumb").Text()
	if crumbs == "" {
		return models.TypeUnset
	}
	switch {
	case strings.Contains(crumbs, "Adjectives"):
		return models.TypeAdjective
	case strings.Contains(crumbs, "Nouns"):
		return models.TypeNoun
	case strings.Contains(crumbs, "Conjugation"):
		return models.TypeVerb
	}
	return models.TypeUnset
}

// fromTitle requires both the operation word and the category word so that
// either alone (frequent in cross-links) cannot misfire.
func fromTitle(doc *goquery.Document) models.VocabularyType {
	title := strings.ToLower(doc.Find("title").First().Text())
	if title == "" {
		return models.TypeUnset
	}
	switch {
	case strings.Contains(title, "declension") && strings.Contains(title, "adjective"):
		return models.TypeAdjective
	case strings.Contains(title, "declension") && strings.Contains(title, "noun"):
		return models.TypeNoun
	case strings.Contains(title, "conjugation") && strings.Contains(title, "verb"):
		return models.TypeVerb
	}
	return models.TypeUnset
}

// fromFirstHeading does a substring match on the first heading element.
// The order adjective, noun, verb is explicit precedence; keep it if more
// categories are ever added.
func fromFirstHeading(doc *goquery.Document) models.VocabularyType {
	heading := strings.ToLower(doc.Find("h1, h2").First().Text())
	if heading == "" {
		return models.TypeUnset
	}
	switch {
	case strings.Contains(heading, "adjective"):
		return models.TypeAdjective
	case strings.Contains(heading, "noun"):
		return models.TypeNoun
	case strings.Contains(heading, "verb"):
		return models.TypeVerb
	}
	return models.TypeUnset
}

// fromWeightedSignals scores each category independently and picks the
// strictly highest non-zero total. Ties resolve to unset rather than guess.
func fromWeightedSignals(html string) models.VocabularyType {
	head := clip(html, fallbackHeadWindow)
	body := clip(html, fallbackBodyWindow)

	verb := scoreVerb(head, body)
	noun := scoreNoun(head, body)
	adj := scoreAdjective(head, body)

	switch {
	case verb > noun && verb > adj && verb > 0:
		return models.TypeVerb
	case noun > verb && noun > adj && noun > 0:
		return models.TypeNoun
	case adj > verb && adj > noun && adj > 0:
		return models.TypeAdjective
	}
	return models.TypeUnset
}

func scoreVerb(head, body string) int {
	score := 0
	if verbTitleRe.MatchString(head) {
		score += weightTitlePhrase
	}
	if verbURLRe.MatchString(head) {
		score += weightURLPath
	}
	if verbDescriptorRe.MatchString(body) {
		score += weightDescriptor
	}
	if verbTermsRe.MatchString(body) {
		score += weightVerbTerms
	}
	return score
}

func scoreNoun(head, body string) int {
	score := 0
	if nounTitleRe.MatchString(head) {
		score += weightTitlePhrase
	}
	if nounURLRe.MatchString(head) {
		score += weightURLPath
	}
	if nounDescriptorRe.MatchString(body) {
		score += weightDescriptor
	}
	if nounTermsRe.MatchString(body) {
		score += weightNounTerms
	}
	// Declension plus case terms appears on both noun and adjective pages;
	// the "weak/strong/mixed declension" phrasing is adjective-only, so its
	// presence hands the co-occurrence points to the adjective score instead.
	if declensionRe.MatchString(body) && caseTermRe.MatchString(body) && !adjDeclensionRe.MatchString(body) {
		score += weightCaseCooccur
	}
	return score
}

func scoreAdjective(head, body string) int {
	score := 0
	if adjTitleRe.MatchString(head) {
		score += weightTitlePhrase
	}
	if adjURLRe.MatchString(head) {
		score += weightURLPath
	}
	if adjDescriptorRe.MatchString(body) {
		score += weightDescriptor
	}
	if adjTermsRe.MatchString(body) {
		score += weightAdjTerms
	}
	if declensionRe.MatchString(body) && caseTermRe.MatchString(body) && adjDeclensionRe.MatchString(body) {
		score += weightCaseCooccur
	}
	return score
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
