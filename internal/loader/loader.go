// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads source documents from a directory, decodes them to
// UTF-8 and normalizes line endings. Documents are produced lazily, one at a
// time, so each can be processed and dropped before the next is read.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

var (
	// ErrInputNotFound is returned when the input directory is missing. It
	// aborts the run.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrNoDocuments is returned when the input directory has no files with
	// a document extension. It aborts the run.
	ErrNoDocuments = errors.New("no documents in input directory")
)

// EmptyDocumentError reports a document with no content. The document is
// skipped.
type EmptyDocumentError struct {
	Name string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s: document is empty", e.Name)
}

// Loader yields the documents of one input directory.
type Loader struct {
	encoding string
	paths    []string
	consumed bool
}

// New lists the document files in cfg.InputDir. Files are matched by
// extension (case-insensitive, default ".txt"); subdirectories and dotfiles
// are ignored.
func New(cfg types.LoaderConfig) (*Loader, error) {
	dir := cfg.InputDir
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
		}
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputNotFound, dir)
	}

	if err := ValidateEncoding(cfg.Encoding); err != nil {
		return nil, err
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".txt"}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !hasExtension(name, exts) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
	}

	return &Loader{encoding: cfg.Encoding, paths: paths}, nil
}

// Count returns the number of document files found.
func (l *Loader) Count() int {
	return len(l.paths)
}

// Documents returns the document sequence in file-name order. Each step
// reads one file. A file that is empty or cannot be read or decoded yields
// a zero-text Document carrying its ID together with a non-nil error; the
// caller decides whether to continue. The sequence can be ranged over once;
// later iterations yield nothing.
func (l *Loader) Documents() iter.Seq2[types.Document, error] {
	return func(yield func(types.Document, error) bool) {
		if l.consumed {
			return
		}
		l.consumed = true

		for _, path := range l.paths {
			doc, err := l.load(path)
			if !yield(doc, err) {
				return
			}
		}
	}
}

func (l *Loader) load(path string) (types.Document, error) {
	doc := types.Document{ID: filepath.Base(path), Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("%s: reading document: %w", doc.ID, err)
	}
	if len(raw) == 0 {
		return doc, &EmptyDocumentError{Name: doc.ID}
	}

	text, err := Decode(raw, l.encoding)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", doc.ID, err)
	}
	text = NormalizeNewlines(text)
	if strings.TrimSpace(text) == "" {
		return doc, &EmptyDocumentError{Name: doc.ID}
	}

	doc.Text = text
	return doc, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}
