// Package cli implements the sqlfhir command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqlfhir",
	Short: "Generate FHIR Library resources from annotated SQL",
	Long: `sqlfhir extracts @key: value annotations from SQL comments and packages
each SQL file as a FHIR Library resource, with the source embedded as a
base64 attachment and the annotations mapped onto Library fields.

Annotations live in ordinary SQL comments:

  -- @title: Patient Demographics Query
  -- @version: 2.1.0
  -- @author: Analytics Team

Exit Codes:
  0  - Success
  1  - General error (at least one file failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Input file missing or unreadable
  12 - Output path not creatable or writable`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for sqlfhir")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
