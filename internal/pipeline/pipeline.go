// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the load -> extract -> write batch over one input
// directory. Documents are handled strictly one after another; a document is
// fully written before the next one is read.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/tensu-corpus/internal/extract"
	"github.com/pdiddy/tensu-corpus/internal/loader"
	"github.com/pdiddy/tensu-corpus/internal/writer"
	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// Summary holds counts from one extraction run.
type Summary struct {
	// Documents is the number of documents that produced records.
	Documents int
	// Skipped counts empty, unreadable, and marker-less documents.
	Skipped int
	// Records is the number of record files written.
	Records int
	// UnknownDates counts processed documents whose date was not found.
	UnknownDates int
	// Failed counts record files that could not be written.
	Failed int
}

// Total returns the number of documents seen.
func (s Summary) Total() int {
	return s.Documents + s.Skipped
}

// HasFailures reports whether any record failed to write.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run extracts every document in cfg.Loader.InputDir and writes one file per
// record into cfg.Output.OutputDir, printing per-document status to w.
//
// A missing input directory or an empty input set is returned as an error
// before anything is written. Per-document problems are logged and counted
// in the summary. Cancelling ctx stops the batch between documents; files
// already written stay on disk.
func Run(ctx context.Context, cfg types.ExtractionConfig, w io.Writer) (Summary, error) {
	engine, err := extract.NewEngine(cfg.Matchers)
	if err != nil {
		return Summary{}, fmt.Errorf("building extraction engine: %w", err)
	}

	src, err := loader.New(cfg.Loader)
	if err != nil {
		return Summary{}, err
	}

	out := writer.New(cfg.Output)
	var (
		summary  Summary
		manifest writer.Manifest
	)

	fmt.Fprintf(w, "found %d document(s) in %s\n", src.Count(), cfg.Loader.InputDir)

	for doc, err := range src.Documents() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, ctxErr
		}

		if err != nil {
			fmt.Fprintf(w, "skipped %v\n", err)
			summary.Skipped++
			continue
		}

		fmt.Fprintf(w, "processing %s\n", doc.ID)

		res, err := engine.Extract(doc)
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "warning: %v; using %s\n", warn, writer.FormatDate(res.Date))
		}
		if err != nil {
			fmt.Fprintf(w, "skipped %v\n", err)
			summary.Skipped++
			continue
		}
		if !res.Date.IsKnown() {
			summary.UnknownDates++
		}

		for _, rec := range res.Records {
			path, err := out.Write(rec)
			if err != nil {
				fmt.Fprintf(w, "failed  %s Q%d: %v\n", doc.ID, rec.Number, err)
				summary.Failed++
				continue
			}
			manifest.Add(path, rec)
			fmt.Fprintf(w, "wrote %s\n", filepath.Base(path))
			summary.Records++
		}
		summary.Documents++
	}

	path, err := writer.WriteManifest(out.Dir(), cfg.Output.Manifest, &manifest)
	if err != nil {
		return summary, fmt.Errorf("writing manifest: %w", err)
	}
	if path != "" {
		fmt.Fprintf(w, "manifest %s (%d records)\n", filepath.Base(path), len(manifest.Entries))
	}

	fmt.Fprintf(w, "\nBatch summary: %d documents, %d records, %d skipped, %d unknown dates, %d failed (total: %d)\n",
		summary.Documents, summary.Records, summary.Skipped, summary.UnknownDates, summary.Failed, summary.Total())

	return summary, nil
}
