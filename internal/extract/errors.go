// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "errors"

var (
	// ErrDateNotFound is returned when no era date appears in the document
	// header. The pipeline continues with types.UnknownDate.
	ErrDateNotFound = errors.New("era date not found in document header")

	// ErrNoQuestionMarkers is returned when a document has no question
	// marker lines. The document is skipped.
	ErrNoQuestionMarkers = errors.New("no question markers found")

	// ErrInvalidMatcher is returned when a matcher table is empty or unusable.
	ErrInvalidMatcher = errors.New("invalid matcher configuration")
)
