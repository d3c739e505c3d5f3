package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tensu-corpus/pkg/types"
)

// effectiveConfig mirrors the config file layout.
type effectiveConfig struct {
	Extract types.ExtractionConfig `yaml:"extract"`
	Convert types.ConversionConfig `yaml:"convert"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the settings extract and convert would use after applying
defaults, the config file, TENSU_CORPUS_* environment variables, and flags.
The output is a valid config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := extractionConfig(extractCmd)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(effectiveConfig{
			Extract: ext,
			Convert: conversionConfig(convertCmd),
		})
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
