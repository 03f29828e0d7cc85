// Package scanner discovers SQL source files in a directory tree for
// batch library generation.
package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/healthforge/sqlfhir/internal/files/filesystem"
	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

// SourceFile is a discovered SQL file with its content already read.
type SourceFile struct {
	// Path is the Unix-style path relative to the scanned root.
	Path string

	// AbsPath is the absolute path on the underlying filesystem.
	AbsPath string

	// Name is the base file name.
	Name string

	// Extension is the file extension including the leading dot.
	Extension string

	// Content is the file's full content.
	Content string

	SizeBytes  int64
	ModifiedAt time.Time
}

// Scanner discovers SQL files from a directory tree.
// Safe for concurrent use as long as the provider is.
type Scanner struct {
	fsProvider filesystem.Provider
}

// NewScanner creates a scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.Provider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// ScanDirectory recursively scans sourcePath and returns every SQL file
// found, sorted by relative path. Non-SQL files are skipped. Files that
// exist but cannot be read surface as *sqlfhir.FileAccessError.
func (s *Scanner) ScanDirectory(sourcePath string) ([]SourceFile, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []SourceFile

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}
		if !IsSQLExtension(filepath.Ext(file.Path())) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return &sqlfhir.FileAccessError{Path: file.Path(), Err: err}
		}

		info := file.Info()
		files = append(files, SourceFile{
			Path:       filepath.ToSlash(file.RelativePath()),
			AbsPath:    file.Path(),
			Name:       info.Name(),
			Extension:  filepath.Ext(info.Name()),
			Content:    string(content),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// IsSQLExtension reports whether the extension marks a SQL source file.
func IsSQLExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".sql", ".ddl", ".dml", ".psql", ".pgsql":
		return true
	default:
		return false
	}
}
