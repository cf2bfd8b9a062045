package gen

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold strips diacritics: decompose to NFD, drop combining marks,
// recompose. "Sofía" -> "Sofia".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		// The fixed name vocabulary always folds cleanly.
		return s
	}
	return out
}

// emailFor derives the unique address for a customer. The id suffix keeps
// addresses unique even when a first/last pair repeats.
func emailFor(first, last string, id int) string {
	local := fmt.Sprintf("%s.%s%d", foldASCII(first), foldASCII(last), id)
	return strings.ToLower(local) + "@example.com"
}
