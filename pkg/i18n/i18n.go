// Package i18n resolves UI strings for the two supported languages.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

type Language string

const (
	FR Language = "fr"
	EN Language = "en"
)

var Languages = []Language{FR, EN}

//go:embed catalog.yaml
var defaultCatalog []byte

// ParseLanguage accepts "fr", "en" and region variants such as "en-US".
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Language(s) {
	case FR:
		return FR, true
	case EN:
		return EN, true
	}
	return "", false
}

type Translator struct {
	entries map[Key]map[Language]string
}

// NewTranslator loads the embedded catalogue.
func NewTranslator() (*Translator, error) {
	return NewTranslatorFromYAML(defaultCatalog)
}

func MustTranslator() *Translator {
	tr, err := NewTranslator()
	if err != nil {
		panic(err)
	}
	return tr
}

func NewTranslatorFromYAML(data []byte) (*Translator, error) {
	raw := map[string]map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse translation catalogue: %w", err)
	}

	entries := make(map[Key]map[Language]string, len(raw))
	for k, byLang := range raw {
		m := make(map[Language]string, len(byLang))
		for lang, text := range byLang {
			l, ok := ParseLanguage(lang)
			if !ok {
				return nil, fmt.Errorf("key %q: unsupported language %q", k, lang)
			}
			m[l] = text
		}
		entries[Key(k)] = m
	}
	return &Translator{entries: entries}, nil
}

// Translate returns the entry for key in lang, or the key itself when missing.
func (t *Translator) Translate(key Key, lang Language) string {
	if byLang, ok := t.entries[key]; ok {
		if text, ok := byLang[lang]; ok {
			return text
		}
	}
	return string(key)
}

func (t *Translator) Format(key Key, lang Language, args ...any) string {
	return fmt.Sprintf(t.Translate(key, lang), args...)
}

// Missing lists keys with no entry for lang.
func (t *Translator) Missing(lang Language) []Key {
	var missing []Key
	for _, k := range AllKeys {
		if _, ok := t.entries[k][lang]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Catalogue returns every entry for lang, keyed by its string form.
func (t *Translator) Catalogue(lang Language) map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, byLang := range t.entries {
		if text, ok := byLang[lang]; ok {
			out[string(k)] = text
		}
	}
	return out
}
