// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tensu-corpus/internal/pipeline"
	"github.com/pdiddy/tensu-corpus/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Split Q&A text documents into one Markdown record per question",
	Long: `Extract reads every text document in the input directory, finds the
issuance date (era notation such as 令和5年4月1日), classifies the document
category, splits it at 問N markers, separates question and answer at （答）,
and writes {YYYYMMDD}_{N}_{category}.md files to the output directory.

Documents without a date are written with 00000000. Empty documents and
documents without question markers are skipped with a warning. The command
fails only when the input directory is missing or holds no documents, or
when a record cannot be written.`,
	RunE: runExtract,
}

func init() {
	extractFlags(extractCmd)
	rootCmd.AddCommand(extractCmd)
}

func extractFlags(cmd *cobra.Command) {
	cmd.Flags().String("input-dir", "input", "directory of source text documents")
	cmd.Flags().String("output-dir", "output", "directory for generated records")
	cmd.Flags().String("ext", ".txt", "comma-separated document file extensions")
	cmd.Flags().String("encoding", "auto", "source encoding: auto, utf-8, shift_jis, euc-jp, ...")
	cmd.Flags().String("manifest", "", "also write an index of records: yaml or json")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractionConfig(cmd)
	if err != nil {
		return err
	}

	summary, err := pipeline.Run(cmd.Context(), cfg, statusWriter(cmd))
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d record(s) could not be written", summary.Failed)
	}
	return nil
}

// extractionConfig layers the config file's extract section and flags over
// the built-in defaults.
func extractionConfig(cmd *cobra.Command) (types.ExtractionConfig, error) {
	cfg := types.DefaultExtractionConfig()

	if viper.IsSet("extract.matchers") {
		if err := viper.UnmarshalKey("extract.matchers", &cfg.Matchers); err != nil {
			return cfg, fmt.Errorf("parsing extract.matchers: %w", err)
		}
	}

	stringSetting(cmd, "input-dir", "extract.loader.input_dir", &cfg.Loader.InputDir)
	stringSetting(cmd, "encoding", "extract.loader.encoding", &cfg.Loader.Encoding)
	stringSetting(cmd, "output-dir", "extract.output.output_dir", &cfg.Output.OutputDir)
	stringSetting(cmd, "", "extract.output.extension", &cfg.Output.Extension)
	stringSetting(cmd, "", "extract.output.tag", &cfg.Output.Tag)

	exts := strings.Join(cfg.Loader.Extensions, ",")
	stringSetting(cmd, "ext", "extract.loader.extensions", &exts)
	cfg.Loader.Extensions = splitList(exts)

	manifest := string(cfg.Output.Manifest)
	stringSetting(cmd, "manifest", "extract.output.manifest", &manifest)
	switch m := types.ManifestFormat(strings.ToLower(manifest)); m {
	case types.ManifestNone, types.ManifestYAML, types.ManifestJSON:
		cfg.Output.Manifest = m
	default:
		return cfg, fmt.Errorf("unsupported manifest format %q: use yaml or json", manifest)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			if !strings.HasPrefix(p, ".") {
				p = "." + p
			}
			out = append(out, p)
		}
	}
	return out
}
