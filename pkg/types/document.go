// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tensu-corpus pipeline:
// loaded documents, extracted dates, question blocks, and output records.
package types

// Document is one loaded source text. It is not modified after loading.
type Document struct {
	// ID is the source file name (e.g. "r5_0401_gigi.txt").
	ID string `json:"id" yaml:"id"`

	// Path is the filesystem path the document was read from.
	Path string `json:"path" yaml:"path"`

	// Text is the decoded UTF-8 content with line endings normalized to "\n".
	Text string `json:"-" yaml:"-"`
}

// Date is an absolute calendar date derived from era-date notation. The zero
// value is the unknown date; use UnknownDate to make that explicit.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`

	known bool
}

// UnknownDate marks a document whose issuance date could not be extracted.
var UnknownDate = Date{}

// NewDate returns a known date. Callers validate that components are positive.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day, known: true}
}

// IsKnown reports whether d holds an extracted date.
func (d Date) IsKnown() bool {
	return d.known
}

// QuestionBlock is the raw text of one numbered question, from its marker
// line up to the next marker or end of document.
type QuestionBlock struct {
	// Number is the sequence number parsed from the marker. It is not
	// guaranteed unique or increasing within a document.
	Number int `json:"number" yaml:"number"`

	Text string `json:"text" yaml:"text"`
}

// QAPair is a question block split at its answer marker. Either side may be
// empty.
type QAPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Record is the unit written to disk, one per QuestionBlock.
type Record struct {
	Number   int    `json:"number" yaml:"number"`
	Date     Date   `json:"date" yaml:"date"`
	SourceID string `json:"source_id" yaml:"source_id"`
	Category string `json:"category" yaml:"category"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
