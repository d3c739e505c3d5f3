// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Era maps an era name to the offset that turns an era year into an absolute
// year. Offset is the absolute year of era year 1, minus one.
type Era struct {
	// Name is the era as written in documents (e.g. "令和").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Offset is added to the era year (令和: 2018, so 令和1年 = 2019).
	Offset int `json:"offset" yaml:"offset" mapstructure:"offset"`
}

// LoaderConfig holds settings for the document loader.
type LoaderConfig struct {
	// InputDir is the directory holding source text files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Extensions lists the file extensions treated as documents (default ".txt").
	Extensions []string `json:"extensions" yaml:"extensions" mapstructure:"extensions"`

	// Encoding is "auto" or a WHATWG encoding label such as "shift_jis".
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`
}

// MatcherConfig holds the extraction tables. Every matcher is built from
// this value; nothing is read from package state.
type MatcherConfig struct {
	// Eras is the era table searched by the date matcher, in priority order.
	Eras []Era `json:"eras" yaml:"eras" mapstructure:"eras"`

	// DatePrefixRunes bounds the date search to the start of the document (default 500).
	DatePrefixRunes int `json:"date_prefix_runes" yaml:"date_prefix_runes" mapstructure:"date_prefix_runes"`

	// Categories lists category keywords in priority order.
	Categories []string `json:"categories" yaml:"categories" mapstructure:"categories"`

	// DefaultCategory is used when no keyword appears in the prefix.
	DefaultCategory string `json:"default_category" yaml:"default_category" mapstructure:"default_category"`

	// CategoryPrefixRunes bounds the category search (default 300).
	CategoryPrefixRunes int `json:"category_prefix_runes" yaml:"category_prefix_runes" mapstructure:"category_prefix_runes"`

	// QuestionMarker starts a question block when followed by a numeral (default "問").
	QuestionMarker string `json:"question_marker" yaml:"question_marker" mapstructure:"question_marker"`

	// AnswerMarker separates question and answer text (default "答").
	AnswerMarker string `json:"answer_marker" yaml:"answer_marker" mapstructure:"answer_marker"`
}

// ManifestFormat selects the optional record index written after a run.
type ManifestFormat string

const (
	ManifestNone ManifestFormat = ""
	ManifestYAML ManifestFormat = "yaml"
	ManifestJSON ManifestFormat = "json"
)

// OutputConfig holds settings for the record writer.
type OutputConfig struct {
	// OutputDir is the directory receiving one file per record.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Extension is appended to every record file name (default ".md").
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Tag is written into each record's tags line (default "疑義解釈").
	Tag string `json:"tag" yaml:"tag" mapstructure:"tag"`

	// Manifest selects an index file written after the batch: "", "yaml" or "json".
	Manifest ManifestFormat `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
}

// ExtractionConfig groups the configuration for one extraction run.
type ExtractionConfig struct {
	Loader   LoaderConfig  `json:"loader" yaml:"loader" mapstructure:"loader"`
	Matchers MatcherConfig `json:"matchers" yaml:"matchers" mapstructure:"matchers"`
	Output   OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
}

// ConversionBackend identifies how PDFs are turned into text.
type ConversionBackend string

const (
	BackendPdftotext ConversionBackend = "pdftotext"
	BackendContainer ConversionBackend = "container"
)

// ConversionConfig holds settings for the PDF-to-text stage.
type ConversionConfig struct {
	// Backend selects a local pdftotext binary or a container image.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Image is the container image providing pdftotext (container backend only).
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// PDFDir is scanned for *.pdf files in batch mode.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir" mapstructure:"pdf_dir"`

	// InputDir receives the converted text files; it is the loader's input.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`
}

// DefaultExtractionConfig returns the standard tables for fee-schedule Q&A
// documents: 令和 dates, the five categories, and 問/答 markers.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Loader: LoaderConfig{
			InputDir:   "input",
			Extensions: []string{".txt"},
			Encoding:   "auto",
		},
		Matchers: MatcherConfig{
			Eras:                []Era{{Name: "令和", Offset: 2018}},
			DatePrefixRunes:     500,
			Categories:          []string{"医科", "歯科", "調剤", "訪問看護", "共通"},
			DefaultCategory:     "医科",
			CategoryPrefixRunes: 300,
			QuestionMarker:      "問",
			AnswerMarker:        "答",
		},
		Output: OutputConfig{
			OutputDir: "output",
			Extension: ".md",
			Tag:       "疑義解釈",
		},
	}
}

// DefaultConversionConfig returns pdftotext-from-PATH settings.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		Backend:  BackendPdftotext,
		Image:    "minidocks/poppler:latest",
		PDFDir:   "pdf",
		InputDir: "input",
	}
}
