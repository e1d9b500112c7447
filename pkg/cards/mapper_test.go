package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhofer/wortkarten/models"
)

func TestBuildCard_Verb(t *testing.T) {
	card, err := BuildCard(models.VerbRecord{
		BaseRecord: models.BaseRecord{
			Word:        "laufen",
			Translated:  "to run",
			ExampleList: []string{"Er läuft jeden Morgen im Park."},
		},
		Conjugations: map[string]string{
			"ich": "laufe", "du": "läufst", "er": "läuft",
			"wir": "laufen", "ihr": "lauft", "sie": "laufen",
		},
		SimplePast: "lief",
		Perfekt:    "bin gelaufen",
	})
	require.NoError(t, err)

	assert.Equal(t, "laufen", card.Question)
	assert.Equal(t, "to run", card.Answer)
	assert.Contains(t, card.Markdown, "## laufen")
	assert.Contains(t, card.Markdown, "| du | läufst |")
	assert.Contains(t, card.Markdown, "**Simple past:** lief")
	assert.Contains(t, card.Markdown, "**Perfekt:** bin gelaufen")
	assert.Contains(t, card.Markdown, "- Er läuft jeden Morgen im Park.")

	// Pronoun rows appear in canonical order regardless of map iteration.
	ich := strings.Index(card.Markdown, "| ich |")
	sie := strings.Index(card.Markdown, "| sie |")
	require.True(t, ich >= 0 && sie >= 0)
	assert.Less(t, ich, sie)
}

func TestBuildCard_Noun(t *testing.T) {
	card, err := BuildCard(models.NounRecord{
		BaseRecord: models.BaseRecord{
			Word:        "Haus",
			Translated:  "house",
			ExampleList: []string{models.SentinelExampleNotFound},
		},
		Article: "das",
		Plural:  "die Häuser",
	})
	require.NoError(t, err)

	assert.Equal(t, "das Haus", card.Question, "question includes the article when present")
	assert.Contains(t, card.Markdown, "**Plural:** die Häuser")
	assert.Contains(t, card.Markdown, "- "+models.SentinelExampleNotFound,
		"sentinel examples are rendered verbatim")
}

func TestBuildCard_NounWithoutArticle(t *testing.T) {
	card, err := BuildCard(models.NounRecord{
		BaseRecord: models.BaseRecord{Word: "Leute", Translated: "people"},
		Article:    models.SentinelArticleNotFound,
		Plural:     models.SentinelPluralNotFound,
	})
	require.NoError(t, err)

	assert.Equal(t, "Leute", card.Question, "missing article never leaks into the question")
}

func TestBuildCard_Adjective(t *testing.T) {
	card, err := BuildCard(models.AdjectiveRecord{
		BaseRecord: models.BaseRecord{Word: "schnell", Translated: "fast"},
		Comparison: models.Comparison{Positive: "schnell", Comparative: "schneller", Superlative: "schnellsten"},
		Declension: models.Declension{
			Strong: map[string]string{
				"masculine_nominative": "schneller",
				"feminine_nominative":  "schnelle",
			},
			Weak:  map[string]string{},
			Mixed: map[string]string{},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "schnell", card.Question)
	assert.Contains(t, card.Markdown, "**Comparison:** schnell · schneller · schnellsten")
	assert.Contains(t, card.Markdown, "### Strong declension")
	assert.NotContains(t, card.Markdown, "### Weak declension", "empty tables are omitted")
	assert.NotContains(t, card.Markdown, "### Mixed declension")

	// Sorted key order.
	fem := strings.Index(card.Markdown, "| feminine_nominative |")
	masc := strings.Index(card.Markdown, "| masculine_nominative |")
	require.True(t, fem >= 0 && masc >= 0)
	assert.Less(t, fem, masc)
}

func TestBuildCard_Unknown(t *testing.T) {
	card, err := BuildCard(models.UnknownRecord{
		BaseRecord: models.BaseRecord{
			Word:        "doch",
			Translated:  "however",
			ExampleList: []string{"Doch das stimmt nicht."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "doch", card.Question)
	assert.Equal(t, "however", card.Answer)
	assert.NotContains(t, card.Markdown, "Conjugation")
	assert.NotContains(t, card.Markdown, "Plural")
}

// strayRecord is a variant the mapper does not know about.
type strayRecord struct{ models.BaseRecord }

func (strayRecord) Type() models.VocabularyType { return models.VocabularyType("adverb") }

func TestBuildCard_UnsupportedVariant(t *testing.T) {
	_, err := BuildCard(strayRecord{})
	assert.ErrorIs(t, err, ErrUnsupportedRecord)
}
