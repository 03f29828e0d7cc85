package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/healthforge/sqlfhir/internal/config"
	"github.com/healthforge/sqlfhir/internal/fhir"
	"github.com/healthforge/sqlfhir/internal/files/scanner"
	"github.com/healthforge/sqlfhir/internal/logging"
	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

var generateCmd = &cobra.Command{
	Use:   "generate <path>...",
	Short: "Generate FHIR Library JSON from SQL files",
	Long: `Generate a FHIR Library resource for each SQL file.

Each path may be a single SQL file or a directory; directories are
scanned recursively for .sql, .ddl, .dml, .psql and .pgsql files. One
JSON document is written per input file, mirroring the directory
structure under the output directory.

Output directory resolution (highest priority first):
  1. --output flag
  2. SQLFHIR_OUTPUT_DIR environment variable
  3. output_dir in sqlfhir.yaml
  4. "output"

Examples:
  # Single file
  sqlfhir generate queries/users.sql

  # Whole directory into a custom output location
  sqlfhir generate ./queries --output ./fhir`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

var generateOutput string

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory for generated JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	st := newStyles()

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return fmt.Errorf("%w: %v", sqlfhir.ErrInvalidConfig, err)
	}

	outputDir := resolveOutputDir(cmd, cfg)
	logger.Verbose("output directory: %s", outputDir)

	builder := fhir.NewBuilder()
	if cfg.Status != "" {
		builder.DefaultStatus = cfg.Status
	}
	if cfg.Publisher != "" {
		builder.DefaultPublisher = cfg.Publisher
	}

	generated := 0
	failed := 0

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			logger.Error("%s", st.Error.Render(fmt.Sprintf("cannot access %s: %v", arg, err)))
			failed++
			continue
		}

		if info.IsDir() {
			ok, bad := generateDirectory(builder, logger, st, arg, outputDir)
			generated += ok
			failed += bad
			continue
		}

		if err := generateFile(builder, arg, filepath.Join(outputDir, jsonName(filepath.Base(arg)))); err != nil {
			logger.Error("%s", st.Error.Render(fmt.Sprintf("%s: %v", arg, err)))
			failed++
			continue
		}
		logger.Info("%s", st.Success.Render(fmt.Sprintf("✓ %s", arg)))
		generated++
	}

	logger.Info("Generated %d library resource(s), %d failure(s)", generated, failed)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// generateDirectory processes every SQL file under dir, mirroring the
// relative layout under outputDir. Failures are logged and counted so a
// single bad file does not abort the batch.
func generateDirectory(builder *fhir.Builder, logger sqlfhir.Logger, st *styles, dir, outputDir string) (generated, failed int) {
	files, err := scanner.NewScanner().ScanDirectory(dir)
	if err != nil {
		logger.Error("%s", st.Error.Render(fmt.Sprintf("scan %s: %v", dir, err)))
		return 0, 1
	}
	if len(files) == 0 {
		logger.Info("%s", st.Muted.Render(fmt.Sprintf("no SQL files found in %s", dir)))
		return 0, 0
	}

	for _, f := range files {
		outPath := filepath.Join(outputDir, filepath.FromSlash(jsonName(f.Path)))
		lib := builder.BuildFromSource(f.Path, f.Content)
		if err := builder.Export(lib, outPath); err != nil {
			logger.Error("%s", st.Error.Render(fmt.Sprintf("%s: %v", f.Path, err)))
			failed++
			continue
		}
		logger.Info("%s", st.Success.Render(fmt.Sprintf("✓ %s → %s", f.Path, outPath)))
		generated++
	}
	return generated, failed
}

func generateFile(builder *fhir.Builder, path, outPath string) error {
	lib, err := builder.BuildFromFile(path)
	if err != nil {
		return err
	}
	return builder.Export(lib, outPath)
}

// jsonName swaps a SQL file's extension for .json.
func jsonName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}

// resolveOutputDir picks the output directory: flag, then environment
// and config (already merged by the config package), then "output".
func resolveOutputDir(cmd *cobra.Command, cfg *config.ProjectConfig) string {
	if cmd.Flags().Changed("output") {
		return generateOutput
	}
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "output"
}

// loadProjectConfig loads godotenv and project configuration.
// A missing sqlfhir.yaml falls back to environment-only config.
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.FromEnvironment(), nil
		}
		return nil, err
	}
	return cfg, nil
}
