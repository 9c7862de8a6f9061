// Package words splits text into words following the Unicode word
// boundary rules of UAX #29.
package words

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Split returns the words of text. Segments made only of spaces or
// punctuation are dropped.
func Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	breaker := uax29.NewWordBreaker(1)
	seg := segment.NewSegmenter(breaker)
	seg.BreakOnZero(true, false)
	seg.Init(strings.NewReader(text))

	var words []string
	for seg.Next() {
		if w := seg.Text(); isWord(w) {
			words = append(words, strings.TrimSpace(w))
		}
	}
	return words
}

// Count returns the number of words in text
func Count(text string) int {
	return len(Split(text))
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
