package sqlfhir

// Process exit codes. Documented in the root command help text so that
// pipeline callers can branch on them.
const (
	// ExitSuccess indicates all inputs were processed without error.
	ExitSuccess = 0

	// ExitGeneralError indicates an unclassified failure, including a batch
	// in which at least one file failed.
	ExitGeneralError = 1

	// ExitUsageError indicates invalid arguments or flags.
	ExitUsageError = 2

	// ExitPanic indicates a panic or unexpected system error.
	ExitPanic = 3

	// ExitConfigError indicates invalid project configuration.
	ExitConfigError = 10

	// ExitReadError indicates an input file was missing or unreadable.
	ExitReadError = 11

	// ExitWriteError indicates an output path was not creatable or writable.
	ExitWriteError = 12
)

// SQLContentType is the base MIME type for SQL attachments. Dialect and
// dialect version annotations extend it with parameters:
// "application/sql; dialect=<name>; version=<version>".
const SQLContentType = "application/sql"

// LibraryTypeSystem is the terminology system for the structural library
// type coding attached to every generated resource.
const LibraryTypeSystem = "http://terminology.hl7.org/CodeSystem/library-type"

// LibraryTypeCode marks generated resources as logic libraries.
const LibraryTypeCode = "logic-library"
