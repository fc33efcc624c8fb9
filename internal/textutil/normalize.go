package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// NormalizeName converts typed input to NFC and collapses runs of whitespace
// so that names typed on different keyboards compare equal. Case is kept.
func NormalizeName(value string) string {
	return strings.Join(strings.Fields(norm.NFC.String(value)), " ")
}

// Fold returns the case-folded NFC form of value for case-insensitive matching.
func Fold(value string) string {
	return folder.String(NormalizeName(value))
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
