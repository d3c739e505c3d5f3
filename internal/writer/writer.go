// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer renders extracted records as Markdown files, one file per
// question/answer pair.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

const (
	// unknownDate and unknownDateDigits stand in for a date that could not
	// be extracted. They exist only in rendered output.
	unknownDate       = "0000-00-00"
	unknownDateDigits = "00000000"

	// placeholder fills an empty question or answer section.
	placeholder = "(未抽出)"

	defaultExtension = ".md"
	defaultTag       = "疑義解釈"
)

// Writer writes records into a single output directory.
type Writer struct {
	dir string
	ext string
	tag string
}

// New returns a writer for cfg. The directory is created on first write.
func New(cfg types.OutputConfig) *Writer {
	ext := cfg.Extension
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	tag := cfg.Tag
	if tag == "" {
		tag = defaultTag
	}
	return &Writer{dir: cfg.OutputDir, ext: ext, tag: tag}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// FormatDate renders d as YYYY-MM-DD, or 0000-00-00 when unknown.
func FormatDate(d types.Date) string {
	if !d.IsKnown() {
		return unknownDate
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateDigits renders d as YYYYMMDD, or 00000000 when unknown.
func DateDigits(d types.Date) string {
	if !d.IsKnown() {
		return unknownDateDigits
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// FileName returns "{date digits}_{number}_{category}{ext}".
func (w *Writer) FileName(rec types.Record) string {
	return strings.Join([]string{
		DateDigits(rec.Date),
		strconv.Itoa(rec.Number),
		sanitize(rec.Category),
	}, "_") + w.ext
}

// Render returns the Markdown document for rec.
func (w *Writer) Render(rec types.Record) string {
	lines := []string{
		fmt.Sprintf("# Q%d", rec.Number),
		"date: " + FormatDate(rec.Date),
		"source_file: " + rec.SourceID,
		"category: " + rec.Category,
		"codes: []",
		fmt.Sprintf("tags: [%q]", w.tag),
		"",
		"## 質問",
		orPlaceholder(rec.Question),
		"",
		"## 回答",
		orPlaceholder(rec.Answer),
		"",
		"## Notes",
		"- 自動変換により生成。必要に応じて人手で補正してください。",
	}
	return strings.Join(lines, "\n") + "\n"
}

// Write renders rec into the output directory, creating the directory tree
// if needed and overwriting any existing file. It returns the file path.
func (w *Writer) Write(rec types.Record) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, w.FileName(rec))
	if err := os.WriteFile(path, []byte(w.Render(rec)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// sanitize keeps a category usable as a file name component.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, s)
}
