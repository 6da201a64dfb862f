package mcq

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
)

// field identifies which keyword family a line is tested against.
type field int

const (
	fieldQuestion field = iota
	fieldCorrectAnswer
	fieldExplanation
	fieldCount
)

var fieldKeys = [fieldCount]locale.Key{
	fieldQuestion:      locale.MCQQuestionKeyword,
	fieldCorrectAnswer: locale.MCQCorrectAnswerKeyword,
	fieldExplanation:   locale.MCQExplanationKeyword,
}

// trigger is a set of line kinds that end a multi-line field.
type trigger uint8

const (
	triggerOption trigger = 1 << iota
	triggerCorrectAnswer
	triggerExplanation
	triggerQuestion

	triggerAny = triggerOption | triggerCorrectAnswer | triggerExplanation | triggerQuestion
)

// optionLine matches "A. text", "b) text" and "C: text".
var optionLine = regexp.MustCompile(`(?i)^\s*([a-d])[.):]\s*(.*)$`)

// matchOption returns the text after an option label. The label letter
// itself is not used: options are positional.
func matchOption(line string) (string, bool) {
	m := optionLine.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// variant is one spelling of a keyword, colon included.
type variant struct {
	prefix string
	runes  int
}

// keywordMatcher recognises the keywords of every supported language at
// once, so a single block may mix "Question:" with "Jawaban Benar:".
type keywordMatcher struct {
	variants [fieldCount][]variant
}

func newKeywordMatcher(sets []*locale.TranslationSet) (*keywordMatcher, error) {
	m := &keywordMatcher{}
	for f := range fieldCount {
		seen := make(map[string]struct{})
		for _, set := range sets {
			kw, ok := set.Lookup(fieldKeys[f])
			if !ok {
				return nil, &domain.MissingKeywordError{Language: set.Language().String(), Key: string(fieldKeys[f])}
			}
			prefix := kw + ":"
			folded := strings.ToLower(prefix)
			if _, dup := seen[folded]; dup {
				continue
			}
			seen[folded] = struct{}{}
			m.variants[f] = append(m.variants[f], variant{prefix: prefix, runes: utf8.RuneCountInString(prefix)})
		}
		// Longest first, so the most specific spelling wins.
		sort.SliceStable(m.variants[f], func(i, j int) bool {
			return m.variants[f][i].runes > m.variants[f][j].runes
		})
		if len(m.variants[f]) == 0 {
			return nil, fmt.Errorf("mcq parser: no keyword for %s: %w", fieldKeys[f], domain.ErrMissingKeyword)
		}
	}
	return m, nil
}

// match reports whether the trimmed line starts with any variant of f,
// ignoring case, and returns the text after the colon.
func (m *keywordMatcher) match(f field, line string) (string, bool) {
	for _, v := range m.variants[f] {
		end, ok := runePrefixEnd(line, v.runes)
		if !ok {
			continue
		}
		if strings.EqualFold(line[:end], v.prefix) {
			return line[end:], true
		}
	}
	return "", false
}

// triggers reports whether the trimmed line is one of the kinds in set.
func (m *keywordMatcher) triggers(line string, set trigger) bool {
	if set&triggerOption != 0 && optionLine.MatchString(line) {
		return true
	}
	if set&triggerCorrectAnswer != 0 {
		if _, ok := m.match(fieldCorrectAnswer, line); ok {
			return true
		}
	}
	if set&triggerExplanation != 0 {
		if _, ok := m.match(fieldExplanation, line); ok {
			return true
		}
	}
	if set&triggerQuestion != 0 {
		if _, ok := m.match(fieldQuestion, line); ok {
			return true
		}
	}
	return false
}

// runePrefixEnd returns the byte offset just past the first n runes of s.
func runePrefixEnd(s string, n int) (int, bool) {
	if n == 0 {
		return 0, true
	}
	count := 0
	for i := range s {
		if count == n {
			return i, true
		}
		count++
	}
	if count == n {
		return len(s), true
	}
	return 0, false
}
