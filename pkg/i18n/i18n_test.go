package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tr := MustTranslator()

	assert.Equal(t, "Status updated", tr.Translate(KeyStatusUpdated, EN))
	assert.Equal(t, "Statut mis à jour", tr.Translate(KeyStatusUpdated, FR))
	assert.Equal(t, "Preview link saved", tr.Translate(KeyPreviewSaved, EN))
}

func TestTranslate_MissingFallsBackToKey(t *testing.T) {
	tr, err := NewTranslatorFromYAML([]byte(`status.new: {fr: "Nouveau"}`))
	require.NoError(t, err)

	assert.Equal(t, "Nouveau", tr.Translate(KeyStatusNew, FR))
	assert.Equal(t, "status.new", tr.Translate(KeyStatusNew, EN))
	assert.Equal(t, "status.paid", tr.Translate(KeyStatusPaid, FR))
}

func TestFormat(t *testing.T) {
	tr := MustTranslator()

	assert.Equal(t, "3h left", tr.Format(KeyTimeHoursLeft, EN, 3))
	assert.Equal(t, "2j 2h restant", tr.Format(KeyTimeDaysHoursLeft, FR, 2, 2))
}

func TestEmbeddedCatalogueIsComplete(t *testing.T) {
	tr := MustTranslator()
	for _, lang := range Languages {
		assert.Empty(t, tr.Missing(lang), "missing %s translations", lang)
	}
}

func TestNewTranslatorFromYAML_RejectsUnknownLanguage(t *testing.T) {
	_, err := NewTranslatorFromYAML([]byte(`status.new: {de: "Neu"}`))
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{"fr": FR, "EN": EN, "en-US": EN, "fr_CA": FR}
	for in, want := range cases {
		got, ok := ParseLanguage(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseLanguage("de")
	assert.False(t, ok)
}

func TestCatalogue(t *testing.T) {
	tr := MustTranslator()
	cat := tr.Catalogue(EN)
	assert.Equal(t, "Payment complete", cat["project.payment_complete"])
}
