package verse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onimix/artist-platform/internal/verse"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name   string
		lyrics string
		want   int
	}{
		{name: "empty", lyrics: "", want: 0},
		{name: "whitespace_only", lyrics: "   \n\t  ", want: 0},
		{name: "single_line", lyrics: "started from the bottom", want: 4},
		{name: "multi_line", lyrics: "first line here\nsecond line", want: 5},
		{name: "extra_spacing", lyrics: "  double  spaced   words  ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verse.WordCount(tt.lyrics))
		})
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name   string
		lyrics string
		want   int
	}{
		{name: "empty", lyrics: "", want: 0},
		{name: "one_line", lyrics: "only line", want: 1},
		{name: "blank_lines_between", lyrics: "verse one\n\n\nverse two", want: 2},
		{name: "whitespace_line_ignored", lyrics: "a\n   \t\nb", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verse.LineCount(tt.lyrics))
		})
	}
}

func TestLineCount_TrailingBlankLinesIgnored(t *testing.T) {
	samples := []string{"", "one line", "a\nb\nc", "hook\n\nbridge"}
	for _, lyrics := range samples {
		assert.Equal(t, verse.LineCount(lyrics), verse.LineCount(lyrics+"\n\n"), "lyrics=%q", lyrics)
	}
}

func TestRhymeScheme(t *testing.T) {
	assert.Equal(t, verse.RhymeSchemeNA, verse.RhymeScheme(""))
	assert.Equal(t, verse.RhymeSchemeNA, verse.RhymeScheme("single line"))
	assert.Equal(t, verse.RhymeSchemeNA, verse.RhymeScheme("single line\n\n  \n"))
	assert.Equal(t, "AABB", verse.RhymeScheme("line one\nline two"))
}
