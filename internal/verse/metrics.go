package verse

import "strings"

const (
	// RhymeSchemeNA is returned for lyrics with fewer than two non-blank lines.
	RhymeSchemeNA = "N/A"
	// rhymeSchemePlaceholder is the fixed label for anything longer. Real
	// phonetic rhyme detection is a future extension point.
	rhymeSchemePlaceholder = "AABB"
)

// WordCount counts whitespace-delimited tokens.
func WordCount(lyrics string) int {
	return len(strings.Fields(lyrics))
}

// LineCount counts non-blank lines; lines are trimmed before the check, so
// trailing blank lines and whitespace-only lines are ignored.
func LineCount(lyrics string) int {
	n := 0
	for _, line := range strings.Split(lyrics, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// RhymeScheme labels the rhyme pattern of the lyrics. Currently a stub: any
// text with at least two non-blank lines gets the same placeholder label.
func RhymeScheme(lyrics string) string {
	if LineCount(lyrics) < 2 {
		return RhymeSchemeNA
	}
	return rhymeSchemePlaceholder
}
