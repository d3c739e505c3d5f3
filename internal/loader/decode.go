// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// ErrUnknownEncoding is returned for an encoding label that has no decoder.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// EncodingAuto selects detection: valid UTF-8 is kept, anything else is
// identified by chardet.
const EncodingAuto = "auto"

// fallbackEncoding is assumed when detection gives no answer. Fee-schedule
// sources are published in Shift_JIS.
const fallbackEncoding = "shift_jis"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ValidateEncoding reports whether label is "auto" or a known encoding.
func ValidateEncoding(label string) error {
	if isAuto(label) {
		return nil
	}
	if enc, _ := charset.Lookup(label); enc == nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return nil
}

// Decode converts raw bytes to UTF-8 text using label, or detection when
// label is "auto" or empty. A leading UTF-8 byte order mark is dropped.
func Decode(raw []byte, label string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if isAuto(label) {
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		label = DetectEncoding(raw)
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding as %s: %w", name, err)
	}
	return string(out), nil
}

// DetectEncoding guesses the charset of raw. It falls back to Shift_JIS when
// the detector has no usable result.
func DetectEncoding(raw []byte) string {
	res, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || res == nil || res.Charset == "" {
		return fallbackEncoding
	}
	if enc, _ := charset.Lookup(res.Charset); enc == nil {
		return fallbackEncoding
	}
	return res.Charset
}

// NormalizeNewlines rewrites "\r\n" and lone "\r" as "\n".
func NormalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

func isAuto(label string) bool {
	return label == "" || strings.EqualFold(label, EncodingAuto)
}
