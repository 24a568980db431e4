// Package i18n holds the supported content languages, localized value
// types used by the catalog, and the UI message table.
package i18n

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Language is a content language code.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
	Spanish    Language = "es"
)

// Default is used whenever no language has been chosen.
const Default = Portuguese

// Languages lists all supported languages in display order.
var Languages = []Language{Portuguese, English, Spanish}

// ParseLanguage validates a language code. Matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case Portuguese, English, Spanish:
		return l, nil
	}
	return "", fmt.Errorf("unsupported language %q (want pt, en or es)", s)
}

// DisplayName returns the language's name in its own language.
func (l Language) DisplayName() string {
	switch l {
	case Portuguese:
		return "Português"
	case English:
		return "English"
	case Spanish:
		return "Español"
	default:
		return string(l)
	}
}

// LocalizedString holds one text per language.
type LocalizedString map[Language]string

// Get returns the text for lang, falling back to Portuguese.
func (s LocalizedString) Get(lang Language) string {
	if v, ok := s[lang]; ok && v != "" {
		return v
	}
	return s[Default]
}

// Complete reports whether every supported language has a non-empty text.
func (s LocalizedString) Complete() bool {
	for _, l := range Languages {
		if strings.TrimSpace(s[l]) == "" {
			return false
		}
	}
	return true
}

// LocalizedList holds one word list per language.
type LocalizedList map[Language][]string

// Get returns the list for lang, falling back to Portuguese.
func (l LocalizedList) Get(lang Language) []string {
	if v, ok := l[lang]; ok && len(v) > 0 {
		return v
	}
	return l[Default]
}

// Fold upper-cases s and strips diacritics so "Onça" and "ONCA" compare equal.
func Fold(s string) string {
	// Chains carry buffers, so each call gets its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}
