// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// Splitter separates a question block into question and answer text at the
// answer marker.
type Splitter struct {
	bare   string // 答
	inline string // （答）
	ascii  string // (答)
}

// NewSplitter returns a splitter for the given answer token.
func NewSplitter(marker string) (*Splitter, error) {
	if marker == "" {
		return nil, fmt.Errorf("%w: answer marker is empty", ErrInvalidMatcher)
	}
	return &Splitter{
		bare:   marker,
		inline: "（" + marker + "）",
		ascii:  "(" + marker + ")",
	}, nil
}

// Split locates the first inline marker "（答）". Failing that, it looks for
// a line consisting only of the bare or parenthesized marker and splits
// around it. A block with neither becomes all question.
func (s *Splitter) Split(text string) types.QAPair {
	if i := strings.Index(text, s.inline); i >= 0 {
		return types.QAPair{
			Question: strings.TrimSpace(text[:i]),
			Answer:   strings.TrimSpace(text[i+len(s.inline):]),
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if s.isAnswerLine(line) {
			return types.QAPair{
				Question: strings.TrimSpace(strings.Join(lines[:i], "\n")),
				Answer:   strings.TrimSpace(strings.Join(lines[i+1:], "\n")),
			}
		}
	}

	return types.QAPair{Question: strings.TrimSpace(text)}
}

// isAnswerLine reports whether line, with all whitespace removed, is exactly
// the answer marker.
func (s *Splitter) isAnswerLine(line string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	return compact == s.bare || compact == s.inline || compact == s.ascii
}
