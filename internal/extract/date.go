// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

const defaultDatePrefixRunes = 500

// DateMatcher finds an era date such as "令和５年４月１日" near the top of a
// document and converts it to an absolute date.
type DateMatcher struct {
	re      *regexp.Regexp
	offsets map[string]int
	prefix  int
}

// NewDateMatcher builds a matcher for the given era table. Only the first
// prefixRunes runes of a document are searched; zero or less uses 500.
func NewDateMatcher(eras []types.Era, prefixRunes int) (*DateMatcher, error) {
	if len(eras) == 0 {
		return nil, fmt.Errorf("%w: era table is empty", ErrInvalidMatcher)
	}

	offsets := make(map[string]int, len(eras))
	names := make([]string, 0, len(eras))
	for _, era := range eras {
		if era.Name == "" {
			return nil, fmt.Errorf("%w: era with empty name", ErrInvalidMatcher)
		}
		if _, dup := offsets[era.Name]; dup {
			continue
		}
		offsets[era.Name] = era.Offset
		names = append(names, regexp.QuoteMeta(era.Name))
	}

	pattern := `(` + strings.Join(names, "|") + `)` +
		spaceClass + `(` + numeralClass + `|` + firstYear + `)` + spaceClass + `年` +
		spaceClass + `(` + numeralClass + `)` + spaceClass + `月` +
		spaceClass + `(` + numeralClass + `)` + spaceClass + `日`

	if prefixRunes <= 0 {
		prefixRunes = defaultDatePrefixRunes
	}

	return &DateMatcher{
		re:      regexp.MustCompile(pattern),
		offsets: offsets,
		prefix:  prefixRunes,
	}, nil
}

// Match returns the first era date in the document prefix. It returns
// types.UnknownDate and ErrDateNotFound when there is no match or when any
// component is not a positive integer.
func (m *DateMatcher) Match(text string) (types.Date, error) {
	sub := m.re.FindStringSubmatch(runePrefix(text, m.prefix))
	if sub == nil {
		return types.UnknownDate, ErrDateNotFound
	}

	eraYear, ok1 := ParseNumeral(sub[2])
	month, ok2 := ParseNumeral(sub[3])
	day, ok3 := ParseNumeral(sub[4])
	if !ok1 || !ok2 || !ok3 || eraYear <= 0 || month <= 0 || day <= 0 {
		return types.UnknownDate, fmt.Errorf("%w: invalid component in %q", ErrDateNotFound, sub[0])
	}

	return types.NewDate(m.offsets[sub[1]]+eraYear, month, day), nil
}
