// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// ManifestEntry describes one written record file.
type ManifestEntry struct {
	File       string `json:"file" yaml:"file"`
	Number     int    `json:"number" yaml:"number"`
	Date       string `json:"date" yaml:"date"`
	Category   string `json:"category" yaml:"category"`
	SourceFile string `json:"source_file" yaml:"source_file"`
}

// Manifest collects entries in write order. Entries carry no timestamps so
// repeated runs over the same input produce identical files.
type Manifest struct {
	Entries []ManifestEntry `json:"records" yaml:"records"`
}

// Add records that rec was written to path.
func (m *Manifest) Add(path string, rec types.Record) {
	m.Entries = append(m.Entries, ManifestEntry{
		File:       filepath.Base(path),
		Number:     rec.Number,
		Date:       FormatDate(rec.Date),
		Category:   rec.Category,
		SourceFile: rec.SourceID,
	})
}

// WriteManifest writes m to dir/index.yaml or dir/index.json and returns
// the path. ManifestNone writes nothing and returns "".
func WriteManifest(dir string, format types.ManifestFormat, m *Manifest) (string, error) {
	var (
		data []byte
		name string
		err  error
	)

	switch format {
	case types.ManifestNone:
		return "", nil
	case types.ManifestYAML:
		name = "index.yaml"
		data, err = yaml.Marshal(m)
		if err != nil {
			return "", fmt.Errorf("marshaling YAML: %w", err)
		}
	case types.ManifestJSON:
		name = "index.json"
		data, err = json.MarshalIndent(m, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	default:
		return "", fmt.Errorf("unsupported manifest format %q: use yaml or json", format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
