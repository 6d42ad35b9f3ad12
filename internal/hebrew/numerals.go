package hebrew

import "strings"

var letterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40, 'נ': 50, 'ן': 50,
	'ס': 60, 'ע': 70, 'פ': 80, 'ף': 80, 'צ': 90, 'ץ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// ParseNumeral converts a Hebrew numeral written in letters (gematria) to
// its value. Geresh and gershayim are ignored. It returns false if s holds
// any other character or sums to zero.
func ParseNumeral(s string) (int, bool) {
	s = strings.NewReplacer("׳", "", "״", "", "'", "", "\"", "").Replace(strings.TrimSpace(s))

	total := 0
	for _, r := range s {
		v, ok := letterValues[r]
		if !ok {
			return 0, false
		}
		total += v
	}
	return total, total > 0
}
