// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
)

const defaultCategoryPrefixRunes = 300

// Classifier assigns a document category by keyword. The first keyword in
// priority order that appears in the document prefix wins; later text is
// never consulted.
type Classifier struct {
	keywords []string
	fallback string
	prefix   int
}

// NewClassifier returns a classifier over keywords in priority order.
// prefixRunes of zero or less uses 300.
func NewClassifier(keywords []string, fallback string, prefixRunes int) (*Classifier, error) {
	if fallback == "" {
		return nil, fmt.Errorf("%w: default category is empty", ErrInvalidMatcher)
	}
	if prefixRunes <= 0 {
		prefixRunes = defaultCategoryPrefixRunes
	}
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			kw = append(kw, k)
		}
	}
	return &Classifier{keywords: kw, fallback: fallback, prefix: prefixRunes}, nil
}

// Classify returns the matching category or the fallback.
func (c *Classifier) Classify(text string) string {
	head := runePrefix(text, c.prefix)
	for _, k := range c.keywords {
		if strings.Contains(head, k) {
			return k
		}
	}
	return c.fallback
}
