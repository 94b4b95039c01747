// Package cmd provides command-line interface functionality for XSRTools.
// XSRTools is a collection of utilities for reconstructing storage images
// from raw dumps of Samsung XSR1d flash translation layer regions.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the XSRTools application.
var rootCmd = &cobra.Command{
	Use:   "xsrtools",
	Short: "Tools for XSR1d flash translation layer dumps",
	Long: `XSRTools - A collection of utilities for reconstructing storage images
from raw dumps of Samsung XSR1d flash translation layer (FTL) regions.

Currently supports:
  - FTL dumps (rebuild a linear image, inspect block/sector metadata)

Examples:
  xsrtools ftl rebuild dump.bin image.img
  xsrtools ftl rebuild -v dump.bin image.img
  xsrtools ftl info dump.bin
  xsrtools ftl info -o report.yaml dump.bin

Use 'xsrtools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
