// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns regulatory Q&A text into question/answer records.
// Each pattern (era date, category keyword, question marker, answer marker)
// lives behind its own matcher so it can be tested on literal strings; the
// Engine composes them per document.
package extract

import (
	"fmt"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// Engine runs the four matchers over one document at a time. It holds no
// per-document state.
type Engine struct {
	dates      *DateMatcher
	categories *Classifier
	segmenter  *Segmenter
	splitter   *Splitter
}

// Result is the outcome of extracting one document.
type Result struct {
	Date     types.Date
	Category string
	Records  []types.Record

	// Warnings holds recovered problems, such as ErrDateNotFound, wrapped
	// with the document ID.
	Warnings []error
}

// NewEngine builds all matchers from cfg.
func NewEngine(cfg types.MatcherConfig) (*Engine, error) {
	dates, err := NewDateMatcher(cfg.Eras, cfg.DatePrefixRunes)
	if err != nil {
		return nil, err
	}
	categories, err := NewClassifier(cfg.Categories, cfg.DefaultCategory, cfg.CategoryPrefixRunes)
	if err != nil {
		return nil, err
	}
	segmenter, err := NewSegmenter(cfg.QuestionMarker)
	if err != nil {
		return nil, err
	}
	splitter, err := NewSplitter(cfg.AnswerMarker)
	if err != nil {
		return nil, err
	}
	return &Engine{
		dates:      dates,
		categories: categories,
		segmenter:  segmenter,
		splitter:   splitter,
	}, nil
}

// Extract produces one Record per question block in doc. A missing date is
// recorded as a warning and the date becomes types.UnknownDate. A document
// without question markers returns ErrNoQuestionMarkers; the returned
// Result still carries the date and category.
func (e *Engine) Extract(doc types.Document) (Result, error) {
	var res Result

	date, err := e.dates.Match(doc.Text)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Errorf("%s: %w", doc.ID, err))
	}
	res.Date = date
	res.Category = e.categories.Classify(doc.Text)

	blocks := e.segmenter.Segment(doc.Text)
	if len(blocks) == 0 {
		return res, fmt.Errorf("%s: %w", doc.ID, ErrNoQuestionMarkers)
	}

	res.Records = make([]types.Record, 0, len(blocks))
	for _, b := range blocks {
		qa := e.splitter.Split(b.Text)
		res.Records = append(res.Records, types.Record{
			Number:   b.Number,
			Date:     res.Date,
			SourceID: doc.ID,
			Category: res.Category,
			Question: qa.Question,
			Answer:   qa.Answer,
		})
	}

	return res, nil
}
