// Package fhir assembles FHIR Library resources from annotated SQL sources.
//
// The builder maps well-known annotation keys onto Library fields, turns
// unrecognized keys into extension entries, synthesizes the content MIME
// type from dialect annotations, base64-encodes the SQL as an attachment,
// derives a PascalCase name from the title when none is given, and prunes
// vacuous fields before the document is serialized.
package fhir
