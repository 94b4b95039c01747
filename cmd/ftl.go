// Package cmd provides command-line interface for FTL dump processing.
// This file contains commands for rebuilding linear images from XSR1d
// flash translation layer dumps and inspecting their metadata.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"xsrtools/pkg"
	"xsrtools/pkg/common"
)

// ftlCmd represents the parent command for all FTL dump operations.
// It provides access to rebuild and info subcommands for processing
// raw dumps of XSR1d flash translation layer regions.
var ftlCmd = &cobra.Command{
	Use:   "ftl",
	Short: "Process XSR1d flash translation layer dumps",
	Long: `Process raw dumps of Samsung XSR1d flash translation layer regions.

Commands:
  rebuild   Reconstruct a linear storage image from a dump
  info      Inspect block and sector metadata in a dump

Examples:
  xsrtools ftl rebuild dump.bin image.img
  xsrtools ftl info dump.bin`,
}

// ftlRebuildCmd reconstructs a linear storage image from an XSR1d dump.
// It locates the FTL region by its signature, scans per-sector metadata
// from the out-of-band spare areas, resolves wear-leveling duplicates and
// writes the defragmented image ordered by logical sector number.
var ftlRebuildCmd = &cobra.Command{
	Use:   "rebuild [input_dump] [output_image]",
	Short: "Reconstruct a linear storage image from an XSR1d dump",
	Long: `Reconstruct a linear storage image from an XSR1d flash translation
layer dump.

This command locates the FTL region by its XSR1d signature, reads the
logical sector number (LSN) tags stored in each page's out-of-band spare
area and rebuilds the image in ascending LSN order. When the same LSN is
present in more than one block, the copy from the block with the highest
version wins; ties go to the higher physical address. Logical sectors
never observed in the dump are filled with 0xFF.

Output:
  - Linear image of (max LSN + 1) x 512 bytes

Example:
  xsrtools ftl rebuild dump.bin image.img
  xsrtools ftl rebuild -v dump.bin image.img`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		outputFile := args[1]

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		// Create FTL processor for handling rebuild operations
		processor := pkg.NewFTLProcessor()

		fmt.Printf("Processing FTL dump: %s\n", inputFile)
		fmt.Printf("Output image: %s\n", outputFile)

		if err := processor.Rebuild(inputFile, outputFile); err != nil {
			return fmt.Errorf("failed to rebuild image: %w", err)
		}

		fmt.Println("FTL dump rebuilt successfully!")
		return nil
	},
}

// ftlInfoCmd inspects the metadata of an XSR1d dump without rebuilding it.
// It prints a summary of the FTL region and can optionally export the
// full block and conflict listing as a YAML report.
var ftlInfoCmd = &cobra.Command{
	Use:   "info [input_dump]",
	Short: "Inspect block and sector metadata in an XSR1d dump",
	Long: `Inspect block and sector metadata in an XSR1d flash translation
layer dump.

This command scans the dump's out-of-band metadata only and reports:
  - Region offset and block stride
  - Per-block number, version and mapped sector count
  - Highest logical sector number and resulting image size
  - LSNs present in more than one block (wear-leveling duplicates)

Flags:
  -v, --verbose    Enable verbose output (show debug messages)
  -o, --output     Write the full report to a YAML file

Example:
  xsrtools ftl info dump.bin
  xsrtools ftl info -o report.yaml dump.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		// Check if user wants the report written to a YAML file
		reportFile, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error getting output flag: %w", err)
		}

		// Create FTL processor for handling info operations
		processor := pkg.NewFTLProcessor()

		fmt.Printf("Inspecting FTL dump: %s\n", inputFile)

		if err := processor.Info(inputFile, reportFile); err != nil {
			return fmt.Errorf("failed to inspect dump: %w", err)
		}

		return nil
	},
}

// init initializes the FTL command and its subcommands with appropriate flags.
func init() {
	// Register the FTL command with the root command
	rootCmd.AddCommand(ftlCmd)

	// Add subcommands to the FTL command
	ftlCmd.AddCommand(ftlRebuildCmd)
	ftlCmd.AddCommand(ftlInfoCmd)

	// Add verbose flag to rebuild command for detailed output
	ftlRebuildCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")

	// Add verbose and output flags to info command
	ftlInfoCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
	ftlInfoCmd.Flags().StringP("output", "o", "", "Write the full report to a YAML file")
}
