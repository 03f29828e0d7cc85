package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/healthforge/sqlfhir/internal/annotations"
	"github.com/healthforge/sqlfhir/internal/logging"
)

var annotationsCmd = &cobra.Command{
	Use:   "annotations <file>",
	Short: "Show annotations extracted from a SQL file",
	Long: `Extract and display the @key: value annotations from a SQL file
without generating a library resource. Useful for debugging annotation
placement and value coercion.

Examples:
  # Human-readable table
  sqlfhir annotations queries/users.sql

  # JSON for pipeline consumption
  sqlfhir annotations queries/users.sql --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotations,
}

var annotationsJSON bool

func init() {
	rootCmd.AddCommand(annotationsCmd)
	annotationsCmd.Flags().BoolVar(&annotationsJSON, "json", false, "Output annotations as JSON")
}

func runAnnotations(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	ann, err := annotations.ParseFile(args[0])
	if err != nil {
		return err
	}
	logger.Verbose("extracted %d annotation(s) from %s", ann.Len(), args[0])

	if annotationsJSON {
		data, err := json.MarshalIndent(ann, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if ann.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No annotations found in %s\n", args[0])
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Type", "Value"})
	for _, key := range ann.Keys() {
		v, _ := ann.Get(key)
		t.AppendRow(table.Row{key, v.Kind().String(), v.String()})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "(%d annotations)\n", ann.Len())
	return nil
}
