package menu

import (
	"regexp"
	"strings"
)

// noisePatterns match administrative text interleaved with real menu lines.
// Each pattern consumes from its marker to the end of the line and the list
// is applied in order on the already-cleaned text.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[[^\n\]]*안내\][^\n]*`), // bracketed notice announcements
	regexp.MustCompile(`-[^\n]*운영[^\n]*`),       // dashed operational-hours lines
	regexp.MustCompile(`\*[^\n]*운영[^\n]*`),      // starred operational-hours lines
	regexp.MustCompile(`※[^\n]*`),               // reference-mark notices
	regexp.MustCompile(`<[^\n>]*원>[^\n]*`),      // price annotations like <5,500원>
	regexp.MustCompile(`★[^\n]*★[^\n]*`),        // promotional markers
	regexp.MustCompile(`후식음료:[^\n]*`),           // dessert beverage footers
}

var blankRuns = regexp.MustCompile(`\n\s*\n+`)

// Normalize strips administrative noise from raw scraped menu text and
// squeezes the leftover blank lines. Surviving lines keep their original
// relative order. An empty result means everything was noise, which is a
// valid outcome and not an error.
func Normalize(raw string) string {
	cleaned := raw
	for _, re := range noisePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = blankRuns.ReplaceAllString(cleaned, "\n")
	return strings.TrimSpace(cleaned)
}
