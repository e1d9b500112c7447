package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhofer/wortkarten/models"
)

func TestAdjective_Parse(t *testing.T) {
	rec, err := (&Adjective{}).Parse(readFixture(t, "schnell_adjective.html"))
	require.NoError(t, err)

	adj, ok := rec.(models.AdjectiveRecord)
	require.True(t, ok, "expected an adjective record, got %T", rec)

	assert.Equal(t, models.TypeAdjective, adj.Type())
	assert.Equal(t, "schnell", adj.Word)
	assert.Equal(t, "fast, quick", adj.Translated)
	assert.Equal(t, []string{"Das Auto ist sehr schnell."}, adj.ExampleList)

	assert.Equal(t, models.Comparison{
		Positive:    "schnell",
		Comparative: "schneller",
		Superlative: "schnellsten",
	}, adj.Comparison, `the "am " prefix of the superlative is dropped`)

	assert.Equal(t, map[string]string{
		"masculine_nominative": "schneller",
		"masculine_genitive":   "schnellen",
		"masculine_dative":     "schnellem",
		"masculine_accusative": "schnellen",
		"feminine_nominative":  "schnelle",
		"feminine_genitive":    "schneller",
		"neutral_nominative":   "schnelles",
		"plural_nominative":    "schnelle",
	}, adj.Declension.Strong)

	// Weak and mixed rows carry an article column; the form is the last cell.
	assert.Equal(t, map[string]string{
		"masculine_nominative": "schnelle",
		"masculine_genitive":   "schnellen",
		"feminine_nominative":  "schnelle",
	}, adj.Declension.Weak)
	assert.Equal(t, map[string]string{
		"masculine_nominative": "schneller",
		"masculine_accusative": "schnellen",
	}, adj.Declension.Mixed)
}

func TestAdjective_ComparisonBoldFallback(t *testing.T) {
	rec, err := (&Adjective{}).Parse(readFixture(t, "schnell_two_segments.html"))
	require.NoError(t, err)
	adj := rec.(models.AdjectiveRecord)

	// Only two separator-delimited segments, so the three bolded forms are
	// read positionally instead.
	assert.Equal(t, models.Comparison{
		Positive:    "schnell",
		Comparative: "schneller",
		Superlative: "schnellsten",
	}, adj.Comparison)

	assert.Equal(t, "schnell", adj.Word, "word falls back to the first bold stem form")
	assert.Empty(t, adj.Declension.Strong)
	assert.Empty(t, adj.Declension.Weak)
	assert.Empty(t, adj.Declension.Mixed)
}

func TestAdjective_ParseEmptyPage(t *testing.T) {
	rec, err := (&Adjective{}).Parse(`<html><body></body></html>`)
	require.NoError(t, err)
	adj := rec.(models.AdjectiveRecord)

	assert.Equal(t, models.SentinelUnknown, adj.Word)
	assert.Equal(t, models.Comparison{
		Positive:    models.SentinelUnknown,
		Comparative: models.SentinelUnknown,
		Superlative: models.SentinelUnknown,
	}, adj.Comparison)
}

func TestAdjective_RowsBeforeGenderHeadingIgnored(t *testing.T) {
	html := `<html><body><div class="vDkl"><div class="vTbl"><table>
<tr><th>Nominative</th><td>orphan</td></tr>
<tr><th colspan="2">Feminine</th></tr>
<tr><th>Dative</th><td>schnellen</td></tr>
</table></div></div></body></html>`

	rec, err := (&Adjective{}).Parse(html)
	require.NoError(t, err)
	adj := rec.(models.AdjectiveRecord)

	assert.Equal(t, map[string]string{"feminine_dative": "schnellen"}, adj.Declension.Strong,
		"case rows before the first gender heading have no home and are dropped")
}

func TestAdjective_CanHandle(t *testing.T) {
	e := &Adjective{}
	assert.True(t, e.CanHandle(models.TypeAdjective))
	assert.False(t, e.CanHandle(models.TypeVerb))
}
