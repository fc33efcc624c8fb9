package textutil

import (
	"strings"
	"unicode"
)

// FileToken converts a name into a lowercase token safe for file names.
// Letters and digits, Hangul included, are kept after folding, everything else collapses into
// single dashes. Returns "catalog" when nothing usable remains.
func FileToken(value string) string {
	var b strings.Builder
	dash := false
	for _, r := range Fold(value) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "catalog"
	}
	return out
}
