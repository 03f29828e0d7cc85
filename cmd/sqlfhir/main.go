package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/healthforge/sqlfhir/internal/cli"
	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(sqlfhir.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(sqlfhir.ExitCodeForError(err))
	}
}
