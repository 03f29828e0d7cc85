package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

func resetGenerateFlags() {
	generateOutput = ""
	_ = generateCmd.Flags().Set("output", "")
	generateCmd.Flags().Lookup("output").Changed = false
}

func writeSQL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateCmd_ArgsValidation(t *testing.T) {
	err := generateCmd.Args(generateCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
}

func TestGenerateCmd_SingleFile(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	sqlPath := writeSQL(t, workDir, "users.sql", "-- @title: Users\nSELECT 1;")
	outDir := filepath.Join(workDir, "out")
	generateOutput = outDir
	generateCmd.Flags().Lookup("output").Changed = true

	if err := runGenerate(generateCmd, []string{sqlPath}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "users.json"))
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if doc["resourceType"] != "Library" || doc["title"] != "Users" {
		t.Errorf("Unexpected document: %v", doc)
	}
}

func TestGenerateCmd_Directory(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	writeSQL(t, workDir, "queries/a.sql", "SELECT 1;")
	writeSQL(t, workDir, "queries/nested/b.sql", "SELECT 2;")
	writeSQL(t, workDir, "queries/notes.txt", "not sql")

	generateOutput = filepath.Join(workDir, "fhir")
	generateCmd.Flags().Lookup("output").Changed = true

	if err := runGenerate(generateCmd, []string{filepath.Join(workDir, "queries")}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}

	for _, rel := range []string{"a.json", filepath.Join("nested", "b.json")} {
		if _, err := os.Stat(filepath.Join(workDir, "fhir", rel)); err != nil {
			t.Errorf("Expected %s to exist: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(workDir, "fhir", "notes.json")); err == nil {
		t.Error("Non-SQL file should not produce output")
	}
}

func TestGenerateCmd_MissingInputFails(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	err := runGenerate(generateCmd, []string{filepath.Join(workDir, "missing.sql")})
	if err == nil {
		t.Fatal("Expected error for missing input")
	}
	if sqlfhir.ExitCodeForError(err) != sqlfhir.ExitGeneralError {
		t.Errorf("Batch failure should map to the general error code, got %d",
			sqlfhir.ExitCodeForError(err))
	}
}

func TestGenerateCmd_BatchContinuesPastFailures(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	good := writeSQL(t, workDir, "good.sql", "SELECT 1;")
	generateOutput = filepath.Join(workDir, "out")
	generateCmd.Flags().Lookup("output").Changed = true

	err := runGenerate(generateCmd, []string{filepath.Join(workDir, "missing.sql"), good})
	if err == nil {
		t.Fatal("Expected error when one input fails")
	}
	if _, statErr := os.Stat(filepath.Join(workDir, "out", "good.json")); statErr != nil {
		t.Errorf("Good file should still be generated: %v", statErr)
	}
}

func TestGenerateCmd_OutputDirFromConfig(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	writeSQL(t, workDir, "q.sql", "SELECT 1;")
	if err := os.WriteFile(filepath.Join(workDir, "sqlfhir.yaml"), []byte("output_dir: from-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runGenerate(generateCmd, []string{filepath.Join(workDir, "q.sql")}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "from-yaml", "q.json")); err != nil {
		t.Errorf("Expected output under configured directory: %v", err)
	}
}

func TestGenerateCmd_EnvOverridesConfig(t *testing.T) {
	resetGenerateFlags()
	workDir := t.TempDir()
	t.Chdir(workDir)

	writeSQL(t, workDir, "q.sql", "SELECT 1;")
	if err := os.WriteFile(filepath.Join(workDir, "sqlfhir.yaml"), []byte("output_dir: from-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SQLFHIR_OUTPUT_DIR", filepath.Join(workDir, "from-env"))

	if err := runGenerate(generateCmd, []string{filepath.Join(workDir, "q.sql")}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "from-env", "q.json")); err != nil {
		t.Errorf("Environment should override yaml: %v", err)
	}
}

func TestAnnotationsCmd_ArgsValidation(t *testing.T) {
	if err := annotationsCmd.Args(annotationsCmd, []string{}); err == nil {
		t.Fatal("Expected error for missing args")
	}
	if err := annotationsCmd.Args(annotationsCmd, []string{"a", "b"}); err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestAnnotationsCmd_JSON(t *testing.T) {
	workDir := t.TempDir()
	path := writeSQL(t, workDir, "q.sql", "-- @title: T\n-- @version: 1.0.0\nSELECT 1;")

	annotationsJSON = true
	defer func() { annotationsJSON = false }()

	if err := runAnnotations(annotationsCmd, []string{path}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
}

func TestAnnotationsCmd_Table(t *testing.T) {
	workDir := t.TempDir()
	path := writeSQL(t, workDir, "q.sql", "-- @title: T\nSELECT 1;")

	var out strings.Builder
	annotationsCmd.SetOut(&out)
	defer annotationsCmd.SetOut(nil)

	if err := runAnnotations(annotationsCmd, []string{path}); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if !strings.Contains(out.String(), "title") || !strings.Contains(out.String(), "(1 annotations)") {
		t.Errorf("Unexpected table output: %q", out.String())
	}
}

func TestAnnotationsCmd_MissingFile(t *testing.T) {
	err := runAnnotations(annotationsCmd, []string{filepath.Join(t.TempDir(), "missing.sql")})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if sqlfhir.ExitCodeForError(err) != sqlfhir.ExitReadError {
		t.Errorf("Expected read error exit code, got %d", sqlfhir.ExitCodeForError(err))
	}
}
