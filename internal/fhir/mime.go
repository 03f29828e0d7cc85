package fhir

import (
	"strings"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

// ContentType synthesizes the attachment MIME type from dialect annotations.
// Without @sqlDialect the base type is returned unchanged. With a dialect
// the type is parameterized: "application/sql; dialect=<d>"; a
// @dialectVersion annotation appends "; version=<v>". Dialect and version
// values are used as-is, any string is accepted.
//
// The structured-subtype form "application/<dialect>+sql" found in earlier
// revisions of this mapping is deprecated and never emitted.
func ContentType(ann *sqlfhir.AnnotationMap) string {
	dialect, ok := ann.Get("sqlDialect")
	if !ok {
		return sqlfhir.SQLContentType
	}

	d := strings.TrimSpace(dialect.String())
	if d == "" {
		return sqlfhir.SQLContentType
	}

	contentType := sqlfhir.SQLContentType + "; dialect=" + d
	if version, ok := ann.Get("dialectVersion"); ok {
		if v := strings.TrimSpace(version.String()); v != "" {
			contentType += "; version=" + v
		}
	}
	return contentType
}
