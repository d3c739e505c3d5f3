// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// Segmenter splits a document into numbered question blocks. A block starts
// at a line beginning with the question marker and a numeral ("問１",
// "問 12") and runs until the next such line.
type Segmenter struct {
	re *regexp.Regexp
}

// NewSegmenter returns a segmenter for the given marker token.
func NewSegmenter(marker string) (*Segmenter, error) {
	if marker == "" {
		return nil, fmt.Errorf("%w: question marker is empty", ErrInvalidMatcher)
	}
	pattern := `^` + regexp.QuoteMeta(marker) + `[ \t\x{3000}]*(` + numeralClass + `)`
	return &Segmenter{re: regexp.MustCompile(pattern)}, nil
}

// MarkerNumber reports whether line opens a question block and returns its
// sequence number.
func (s *Segmenter) MarkerNumber(line string) (int, bool) {
	m := s.re.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return ParseNumeral(m[1])
}

// Segment returns the question blocks of text in document order. Lines
// before the first marker are dropped. Numbers are passed through as found,
// including duplicates. Text without markers yields nil.
func (s *Segmenter) Segment(text string) []types.QuestionBlock {
	var (
		blocks []types.QuestionBlock
		lines  []string
		number int
		open   bool
	)

	flush := func() {
		if open {
			blocks = append(blocks, types.QuestionBlock{
				Number: number,
				Text:   strings.Join(lines, "\n"),
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		if n, ok := s.MarkerNumber(line); ok {
			flush()
			number = n
			lines = []string{line}
			open = true
			continue
		}

		if open {
			lines = append(lines, line)
		}
	}

	flush()
	return blocks
}
