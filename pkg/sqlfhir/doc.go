// Package sqlfhir defines the public contracts of the sqlfhir toolchain:
// the annotation value model extracted from SQL comments, the FHIR Library
// document shape produced from it, logging interfaces, error types, and
// process exit codes.
//
// Implementations live under internal/: internal/annotations extracts
// @key: value annotations from SQL comments, internal/fhir assembles and
// exports Library resources.
package sqlfhir
