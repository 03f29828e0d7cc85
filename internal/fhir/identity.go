package fhir

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IdentifierSystem is the system URI for identifiers attached to generated
// libraries, both path-derived and from @identifier annotations.
const IdentifierSystem = "http://healthforge.dev/fhir/sql-library-identifiers"

// namespaceLibraryIdentity is the fixed UUID v5 namespace for deterministic
// library identities derived from source file paths.
var namespaceLibraryIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("healthforge.dev/sqlfhir/library-identity/v1"))

// LibraryIdentity returns a deterministic UUID v5 for a source file path.
// The same path always yields the same identity across runs and machines.
//
// Path normalization: lowercase, forward slashes, no leading "./".
func LibraryIdentity(path string) uuid.UUID {
	normalized := strings.ToLower(filepath.ToSlash(path))
	normalized = strings.TrimPrefix(normalized, "./")
	return uuid.NewSHA1(namespaceLibraryIdentity, []byte(normalized))
}
