// Package cards maps vocabulary records to flashcard fields and talks to the
// remote flashcard service.
package cards

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mhofer/wortkarten/models"
)

// ErrUnsupportedRecord signals a record variant the mapper does not know.
// The variant set is closed, so this is an invariant violation and callers
// must propagate it instead of recording a per-entry failure.
var ErrUnsupportedRecord = errors.New("unsupported record variant")

// Card is the field set submitted to the flashcard service.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Markdown string `json:"markdown"`
}

// BuildCard converts a vocabulary record into flashcard fields. The type
// switch is exhaustive over the record variants.
func BuildCard(rec models.Record) (Card, error) {
	switch r := rec.(type) {
	case models.VerbRecord:
		return verbCard(r), nil
	case models.NounRecord:
		return nounCard(r), nil
	case models.AdjectiveRecord:
		return adjectiveCard(r), nil
	case models.UnknownRecord:
		return basicCard(r.BaseRecord), nil
	default:
		return Card{}, fmt.Errorf("%w: %T", ErrUnsupportedRecord, rec)
	}
}

func verbCard(r models.VerbRecord) Card {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", r.Word)
	fmt.Fprintf(&b, "**Translation:** %s\n\n", r.Translated)

	b.WriteString("### Present\n\n")
	b.WriteString("| Person | Form |\n|---|---|\n")
	for _, person := range models.ConjugationPersons {
		fmt.Fprintf(&b, "| %s | %s |\n", person, r.Conjugations[person])
	}
	fmt.Fprintf(&b, "\n**Simple past:** %s\n\n", r.SimplePast)
	fmt.Fprintf(&b, "**Perfekt:** %s\n", r.Perfekt)
	writeExamples(&b, r.ExampleList)

	return Card{
		Question: r.Word,
		Answer:   r.Translated,
		Markdown: b.String(),
	}
}

func nounCard(r models.NounRecord) Card {
	question := r.Word
	if r.Article != models.SentinelArticleNotFound {
		question = r.Article + " " + r.Word
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", question)
	fmt.Fprintf(&b, "**Translation:** %s\n\n", r.Translated)
	fmt.Fprintf(&b, "**Article:** %s\n\n", r.Article)
	fmt.Fprintf(&b, "**Plural:** %s\n", r.Plural)
	writeExamples(&b, r.ExampleList)

	return Card{
		Question: question,
		Answer:   r.Translated,
		Markdown: b.String(),
	}
}

func adjectiveCard(r models.AdjectiveRecord) Card {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", r.Word)
	fmt.Fprintf(&b, "**Translation:** %s\n\n", r.Translated)
	fmt.Fprintf(&b, "**Comparison:** %s · %s · %s\n",
		r.Comparison.Positive, r.Comparison.Comparative, r.Comparison.Superlative)

	writeDeclensionTable(&b, "Strong declension", r.Declension.Strong)
	writeDeclensionTable(&b, "Weak declension", r.Declension.Weak)
	writeDeclensionTable(&b, "Mixed declension", r.Declension.Mixed)
	writeExamples(&b, r.ExampleList)

	return Card{
		Question: r.Word,
		Answer:   r.Translated,
		Markdown: b.String(),
	}
}

func basicCard(r models.BaseRecord) Card {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", r.Word)
	fmt.Fprintf(&b, "**Translation:** %s\n", r.Translated)
	writeExamples(&b, r.ExampleList)

	return Card{
		Question: r.Word,
		Answer:   r.Translated,
		Markdown: b.String(),
	}
}

func writeExamples(b *strings.Builder, examples []string) {
	b.WriteString("\n### Examples\n\n")
	for _, ex := range examples {
		fmt.Fprintf(b, "- %s\n", ex)
	}
}

func writeDeclensionTable(b *strings.Builder, title string, forms map[string]string) {
	if len(forms) == 0 {
		return
	}
	keys := make([]string, 0, len(forms))
	for k := range forms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "\n### %s\n\n", title)
	b.WriteString("| Form | Value |\n|---|---|\n")
	for _, k := range keys {
		fmt.Fprintf(b, "| %s | %s |\n", k, forms[k])
	}
}
