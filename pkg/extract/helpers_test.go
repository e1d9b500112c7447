package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhofer/wortkarten/models"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestTranslation_EnglishSpan(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<span lang="en">to run</span>
<span lang="en">to walk</span>
</body></html>`)

	assert.Equal(t, "to run", Translation(doc))
}

func TestTranslation_SkipsEmptySpans(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<span lang="en">  </span>
<span lang="en">to run</span>
</body></html>`)

	assert.Equal(t, "to run", Translation(doc))
}

func TestTranslation_FlagFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body><section class="rInf">
laufen · lief · ist gelaufen
🇬🇧 to run, to walk quickly
weitere Formen
</section></body></html>`)

	assert.Equal(t, "to run, to walk quickly", Translation(doc))
}

func TestTranslation_EnglishMarkerFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body><section class="rInf">
Grundform laufen
English: to run along the street
</section></body></html>`)

	assert.Equal(t, "to run along the street", Translation(doc))
}

func TestTranslation_Sentinel(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>nichts hier</p></body></html>`)
	assert.Equal(t, models.SentinelTranslationNotFound, Translation(doc))
}

func TestExamples_FiltersAndCollapses(t *testing.T) {
	doc := parseDoc(t, `<html><body><section class="rBsp"><ul>
<li>Er läuft jeden
Morgen im Park.

🇬🇧 He runs in the park every morning.</li>
<li>kurz</li>
<li>Kein Beispiel ohne Leerzeile hier, nur Text in einer Zeile.</li>
</ul></section></body></html>`)

	examples := Examples(doc)
	require.Len(t, examples, 1)
	assert.Equal(t, "Er läuft jeden Morgen im Park.", examples[0])
}

func TestExamples_LengthBounds(t *testing.T) {
	long := strings.Repeat("sehr lang ", 30)
	doc := parseDoc(t, `<html><body><section class="rBsp"><ul>
<li>`+long+`

🇬🇧 too long anyway</li>
</ul></section></body></html>`)

	assert.Equal(t, []string{models.SentinelExampleNotFound}, Examples(doc))
}

func TestExamples_NoteFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<section class="rBsp"><ul><li>kurz</li></ul></section>
<section class="rNt">Hinweis: «Das Haus steht am Ende der Straße.» und mehr.</section>
</body></html>`)

	assert.Equal(t, []string{"Das Haus steht am Ende der Straße."}, Examples(doc))
}

func TestExamples_Sentinel(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>leer</p></body></html>`)
	assert.Equal(t, []string{models.SentinelExampleNotFound}, Examples(doc))
}

// Both helpers are pure functions of the document: repeated calls must agree.
func TestHelpers_Idempotent(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<span lang="en">to run</span>
<section class="rBsp"><ul><li>Er läuft jeden Morgen im Park.

🇬🇧 He runs every morning.</li></ul></section>
</body></html>`)

	assert.Equal(t, Translation(doc), Translation(doc))
	assert.Equal(t, Examples(doc), Examples(doc))
}
