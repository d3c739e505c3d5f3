// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tensu-corpus CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tensu-corpus CLI.
var rootCmd = &cobra.Command{
	Use:   "tensu-corpus",
	Short: "Build a normalized corpus from fee-schedule Q&A documents",
	Long: `tensu-corpus prepares medical fee-schedule regulatory Q&A (疑義解釈)
documents for downstream use. PDFs are converted to text, then each text
document is split into one Markdown file per question/answer pair, named by
issuance date, question number, and category.

Each stage is a subcommand: convert and extract.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tensu-corpus.yaml or ~/.config/tensu-corpus/config.yaml)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress per-document status output")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tensu-corpus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tensu-corpus"))
		}
	}

	viper.SetEnvPrefix("TENSU_CORPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// statusWriter returns where per-document status lines go.
func statusWriter(cmd *cobra.Command) io.Writer {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}

// stringSetting resolves a string option: an explicit flag wins, then the
// config file or environment, then the value already in dst.
func stringSetting(cmd *cobra.Command, flag, key string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetString(flag)
		return
	}
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
