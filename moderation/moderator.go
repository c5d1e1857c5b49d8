// Package moderation masks forbidden words in tweet text.
// Masking replaces rune for rune, so the length of a text never changes.
package moderation

import (
	"log/slog"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// folded is the searchable form of a text: lower-cased letters without
// separators, each pointing back to its rune index in the original text.
type folded struct {
	runes  []rune
	origin []int
}

// NewModerator builds an automaton over the censored words. Blank words are
// ignored; with no word left the moderator leaves every text untouched.
func NewModerator(words []string, replacement rune, log *slog.Logger) (*Moderator, error) {
	var patterns [][]rune
	for _, word := range words {
		if f := fold(strings.TrimSpace(word)); len(f.runes) > 0 {
			patterns = append(patterns, f.runes)
		}
	}
	m := &Moderator{replacement: replacement, log: log}
	if len(patterns) == 0 {
		return m, nil
	}
	m.matcher = new(goahocorasick.Machine)
	if err := m.matcher.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// Censor masks every occurrence of a censored word and returns the words found.
func (m *Moderator) Censor(text string) (string, []string) {
	if m == nil || m.matcher == nil {
		return text, nil
	}
	f := fold(text)
	if len(f.runes) == 0 {
		return text, nil
	}
	terms := m.matcher.MultiPatternSearch(f.runes, false)
	if len(terms) == 0 {
		return text, nil
	}

	masked := []rune(text)
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		end := term.Pos + len(term.Word) - 1
		if term.Pos < 0 || end >= len(f.origin) {
			continue
		}
		for i := f.origin[term.Pos]; i <= f.origin[end]; i++ {
			masked[i] = m.replacement
		}
		found = append(found, string(term.Word))
	}
	m.log.Debug("Censored words", "count", len(found))
	return string(masked), found
}

func fold(text string) folded {
	var f folded
	for i, r := range []rune(text) {
		if mapped, ok := leet[r]; ok {
			r = mapped
		}
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.origin = append(f.origin, i)
	}
	return f
}
