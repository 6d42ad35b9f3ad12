package hebrew

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStripNikud(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"vowel points", "בְּרֵאשִׁית בָּרָא אֱלֹהִים", "בראשית ברא אלהים"},
		{"maqaf preserved", "עַל־פְּנֵי", "על־פני"},
		{"cantillation", "בְּרֵאשִׁ֖ית בָּרָ֣א", "בראשית ברא"},
		{"plain text unchanged", "בראשית ברא אלהים", "בראשית ברא אלהים"},
		{"latin unchanged", "In the beginning", "In the beginning"},
		{"empty", "", ""},
		{"only marks", "ְִ֑", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripNikud(tt.input))
		})
	}
}

func TestStripPrefixLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"vav", "ואלהים", "אלהים"},
		{"heh", "האלהים", "אלהים"},
		{"bet", "באלהים", "אלהים"},
		{"kaf", "כאלהים", "אלהים"},
		{"lamed", "לאלהים", "אלהים"},
		{"mem", "מאלהים", "אלהים"},
		{"yod", "יאלהים", "אלהים"},
		{"non prefix letter", "אראשית", "אראשית"},
		{"consecutive prefixes", "ובהארץ", "ארץ"},
		{"keeps last letter", "ובל", "ל"},
		{"keeps last repeated letter", "והה", "ה"},
		{"single letter", "ו", "ו"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripPrefixLetters(tt.input))
		})
	}
}

func TestStripPrefixLetters_MinimalResidue(t *testing.T) {
	t.Parallel()

	letters := []rune("והבכלמי")
	for n := 2; n <= len(letters); n++ {
		word := string(letters[:n])
		got := StripPrefixLetters(word)
		assert.Equal(t, 1, utf8.RuneCountInString(got), "word %q", word)
		assert.Equal(t, string(letters[n-1]), got, "word %q", word)
	}

	for _, r := range letters {
		assert.Equal(t, string(r), StripPrefixLetters(string(r)))
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		stripPrefixes bool
		want          string
	}{
		{"nikud only", "וְהָאָ֗רֶץ", false, "והארץ"},
		{"with prefixes", "וְהָאָ֗רֶץ הָיְתָ֥ה", true, "ארץ תה"},
		{"collapses whitespace", "  והארץ\t\tהיתה  ", true, "ארץ תה"},
		{"whitespace kept without prefixes", "את  השמים", false, "את  השמים"},
		{"maqaf word", "עַל־פְּנֵי", true, "על־פני"},
		{"empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input, tt.stripPrefixes))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"בְּרֵאשִׁ֖ית בָּרָ֣א אֱלֹהִ֑ים אֵ֥ת הַשָּׁמַ֖יִם וְאֵ֥ת הָאָֽרֶץ׃",
		"והה ובל ו",
		"  mixed Latin ו text ",
		"",
	}
	for _, in := range inputs {
		for _, p := range []bool{false, true} {
			once := Normalize(in, p)
			assert.Equal(t, once, Normalize(once, p), "input %q strip=%v", in, p)
		}
	}
}

func TestReplaceMaqaf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "על פני", ReplaceMaqaf("על־פני"))
	assert.False(t, strings.ContainsRune(ReplaceMaqaf("כל־עשב־שדה"), Maqaf))
}

func TestIsPrefixLetter(t *testing.T) {
	t.Parallel()
	for _, r := range "והבכלמי" {
		assert.True(t, IsPrefixLetter(r), string(r))
	}
	for _, r := range "אגדזחטנסעפצקרשת" {
		assert.False(t, IsPrefixLetter(r), string(r))
	}
}
