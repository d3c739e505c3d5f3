package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tensu-corpus/internal/container"
	"github.com/pdiddy/tensu-corpus/internal/convert"
	"github.com/pdiddy/tensu-corpus/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Convert Q&A PDF files to plain text for extraction",
	Long: `Convert runs pdftotext on each PDF and writes {name}.txt into the input
directory read by extract. Existing text files are skipped. The pdftotext
backend uses the binary on PATH; the container backend runs it inside an
image through docker or podman.`,
	RunE: runConvert,
}

func init() {
	convertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func convertFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", string(types.BackendPdftotext), "conversion backend: pdftotext or container")
	cmd.Flags().String("image", "", "container image providing pdftotext (container backend)")
	cmd.Flags().String("pdf-dir", "pdf", "directory scanned by --batch")
	cmd.Flags().String("input-dir", "input", "directory for converted text documents")
	cmd.Flags().Bool("batch", false, "convert every PDF in pdf-dir")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig(cmd)

	batch, _ := cmd.Flags().GetBool("batch")
	paths := args
	if batch {
		found, err := convert.FindPDFs(cfg.PDFDir)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDFs given: pass file paths or use --batch")
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	result := convert.ConvertPaths(conv, paths, cfg.InputDir, statusWriter(cmd))
	if result.HasFailures() {
		return fmt.Errorf("%d of %d PDF(s) failed to convert", result.Failed, result.Total())
	}
	return nil
}

func conversionConfig(cmd *cobra.Command) types.ConversionConfig {
	cfg := types.DefaultConversionConfig()
	backend := string(cfg.Backend)
	stringSetting(cmd, "backend", "convert.backend", &backend)
	cfg.Backend = types.ConversionBackend(backend)
	stringSetting(cmd, "image", "convert.image", &cfg.Image)
	stringSetting(cmd, "pdf-dir", "convert.pdf_dir", &cfg.PDFDir)
	stringSetting(cmd, "input-dir", "convert.input_dir", &cfg.InputDir)
	return cfg
}

func newConverter(cfg types.ConversionConfig) (convert.Converter, error) {
	switch cfg.Backend {
	case types.BackendPdftotext:
		return convert.NewPdftotextConverter()
	case types.BackendContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return convert.NewContainerConverter(rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown backend %q: use %s or %s",
			cfg.Backend, types.BackendPdftotext, types.BackendContainer)
	}
}
