package services

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// stripDiacritics decomposes, drops combining marks, recomposes.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeFilename produces a storage-safe ASCII name: diacritics are
// stripped ("café.png" -> "cafe.png") and anything outside [A-Za-z0-9.-]
// becomes "_".
func SanitizeFilename(name string) string {
	ascii, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		ascii = name
	}
	safe := unsafeFilenameChars.ReplaceAllString(ascii, "_")
	if safe == "" {
		return "file"
	}
	return safe
}
