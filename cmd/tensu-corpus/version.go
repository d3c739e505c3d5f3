package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tensu-corpus",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tensu-corpus %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
