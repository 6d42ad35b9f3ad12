// Package hebrew normalizes Hebrew text for searching.
//
// Normalization removes vowel points (nikud) and cantillation marks while
// keeping the maqaf, and can optionally strip one layer of grammatical prefix
// letters from the front of every word. All functions are pure and safe for
// concurrent use.
package hebrew

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Maqaf is the Hebrew word-joining hyphen. It sits between the mark ranges
// and is punctuation, not a diacritic.
const Maqaf = '\u05BE'

// prefixLetters are the one-letter prefixes: vav, heh, bet, kaf, lamed, mem, yod.
var prefixLetters = map[rune]bool{
	'ו': true,
	'ה': true,
	'ב': true,
	'כ': true,
	'ל': true,
	'מ': true,
	'י': true,
}

var removeNikud = runes.Remove(runes.Predicate(IsNikud))

// IsNikud reports whether r is a Hebrew vowel point or cantillation mark.
func IsNikud(r rune) bool {
	return (r >= '\u0591' && r <= '\u05BD') || (r >= '\u05BF' && r <= '\u05C7')
}

// IsPrefixLetter reports whether r is one of the seven prefix letters.
func IsPrefixLetter(r rune) bool {
	return prefixLetters[r]
}

// StripNikud removes vowel points and cantillation marks from text.
func StripNikud(text string) string {
	if text == "" {
		return text
	}
	out, _, err := transform.String(removeNikud, text)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if IsNikud(r) {
				return -1
			}
			return r
		}, text)
	}
	return out
}

// StripPrefixLetters strips the leading run of prefix letters from word.
// The final rune is never stripped, so a word of one rune is returned as is.
func StripPrefixLetters(word string) string {
	if utf8.RuneCountInString(word) <= 1 {
		return word
	}

	i := 0
	for i < len(word) {
		r, size := utf8.DecodeRuneInString(word[i:])
		if !prefixLetters[r] || i+size >= len(word) {
			break
		}
		i += size
	}
	return word[i:]
}

// Normalize prepares text for matching. Nikud is always removed; when
// stripPrefixes is set the text is split on whitespace, every word loses its
// prefix letters and the words are rejoined with single spaces.
func Normalize(text string, stripPrefixes bool) string {
	if text == "" {
		return ""
	}

	prepared := StripNikud(text)
	if !stripPrefixes {
		return prepared
	}

	words := strings.Fields(prepared)
	for i, w := range words {
		words[i] = StripPrefixLetters(w)
	}
	return strings.Join(words, " ")
}

// ReplaceMaqaf turns every maqaf into a plain space for display.
func ReplaceMaqaf(text string) string {
	return strings.ReplaceAll(text, string(Maqaf), " ")
}
