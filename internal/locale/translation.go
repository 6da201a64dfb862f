// Package locale holds the localized keyword and message tables the parsers
// and the review front end are configured with.
package locale

import (
	"fmt"
	"maps"

	"github.com/heartmarshall/practice-text/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TranslationSet maps message keys to localized keywords and templates for
// one language. It is immutable once built and safe for concurrent use.
type TranslationSet struct {
	lang     language.Tag
	messages map[Key]string
}

// NewTranslationSet builds a set for lang from a key/template map.
// The map is copied.
func NewTranslationSet(lang language.Tag, messages map[Key]string) *TranslationSet {
	return &TranslationSet{
		lang:     lang,
		messages: maps.Clone(messages),
	}
}

// Language returns the set's language tag.
func (s *TranslationSet) Language() language.Tag { return s.lang }

// Lookup returns the raw template for key.
func (s *TranslationSet) Lookup(key Key) (string, bool) {
	v, ok := s.messages[key]
	return v, ok && v != ""
}

// Get returns the raw template for key, or "" when it is missing.
func (s *TranslationSet) Get(key Key) string {
	v, _ := s.Lookup(key)
	return v
}

// Format looks up key and substitutes args. A missing key yields the key itself.
func (s *TranslationSet) Format(key Key, args ...any) string {
	v, ok := s.Lookup(key)
	if !ok {
		return string(key)
	}
	return Format(v, args...)
}

// Require returns a *domain.MissingKeywordError for the first absent key.
func (s *TranslationSet) Require(keys ...Key) error {
	for _, k := range keys {
		if _, ok := s.Lookup(k); !ok {
			return &domain.MissingKeywordError{Language: s.lang.String(), Key: string(k)}
		}
	}
	return nil
}

// Lower lowercases text using the set's language rules.
func (s *TranslationSet) Lower(text string) string {
	return cases.Lower(s.lang).String(text)
}

// With returns a copy of the set with the given keys overridden.
func (s *TranslationSet) With(overrides map[Key]string) *TranslationSet {
	msgs := maps.Clone(s.messages)
	maps.Copy(msgs, overrides)
	return &TranslationSet{lang: s.lang, messages: msgs}
}

func (s *TranslationSet) String() string {
	return fmt.Sprintf("locale(%s, %d keys)", s.lang, len(s.messages))
}
