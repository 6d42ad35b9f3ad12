package hebrew

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzNormalize(f *testing.F) {
	f.Add("בְּרֵאשִׁית בָּרָא אֱלֹהִים", true)
	f.Add("עַל־פְּנֵי", false)
	f.Add("ובהארץ ו", true)
	f.Add("", true)
	f.Add("   ", false)
	f.Add("\xff\xfe", true)
	f.Add("\x00", false)
	f.Add("mixed ו text", true)

	f.Fuzz(func(t *testing.T, s string, stripPrefixes bool) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		result := Normalize(s, stripPrefixes)

		if second := Normalize(result, stripPrefixes); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}

		for _, r := range result {
			if IsNikud(r) {
				t.Errorf("nikud %U left in %q", r, result)
			}
		}

		if strings.Count(result, string(Maqaf)) != strings.Count(s, string(Maqaf)) {
			t.Errorf("maqaf count changed:\ninput:  %q\noutput: %q", s, result)
		}
	})
}

func FuzzStripPrefixLetters(f *testing.F) {
	f.Add("ובהארץ")
	f.Add("ו")
	f.Add("והה")
	f.Add("")
	f.Add("אראשית")

	f.Fuzz(func(t *testing.T, word string) {
		if !utf8.ValidString(word) {
			t.Skip()
		}
		got := StripPrefixLetters(word)

		if word != "" && got == "" {
			t.Errorf("stripped everything from %q", word)
		}
		if !strings.HasSuffix(word, got) {
			t.Errorf("%q is not a suffix of %q", got, word)
		}
		if StripPrefixLetters(got) != got {
			t.Errorf("not idempotent: %q -> %q -> %q", word, got, StripPrefixLetters(got))
		}
	})
}
