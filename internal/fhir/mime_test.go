package fhir

import (
	"testing"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

func buildAnnotations(pairs ...[2]string) *sqlfhir.AnnotationMap {
	m := sqlfhir.NewAnnotationMap()
	for _, p := range pairs {
		m.Merge(p[0], sqlfhir.StringValue(p[1]))
	}
	return m
}

func TestContentType_NoDialect(t *testing.T) {
	if got := ContentType(sqlfhir.NewAnnotationMap()); got != "application/sql" {
		t.Errorf("expected plain base type, got %q", got)
	}
}

func TestContentType_Dialect(t *testing.T) {
	ann := buildAnnotations([2]string{"sqlDialect", "hive"})
	if got := ContentType(ann); got != "application/sql; dialect=hive" {
		t.Errorf("unexpected content type: %q", got)
	}
}

func TestContentType_DialectAndVersion(t *testing.T) {
	ann := buildAnnotations(
		[2]string{"sqlDialect", "hive"},
		[2]string{"dialectVersion", "3.1.2"},
	)
	if got := ContentType(ann); got != "application/sql; dialect=hive; version=3.1.2" {
		t.Errorf("unexpected content type: %q", got)
	}
}

func TestContentType_VersionWithoutDialect(t *testing.T) {
	ann := buildAnnotations([2]string{"dialectVersion", "3.1.2"})
	if got := ContentType(ann); got != "application/sql" {
		t.Errorf("version without dialect must not parameterize: %q", got)
	}
}

func TestContentType_CustomDialectAcceptedAsIs(t *testing.T) {
	ann := buildAnnotations([2]string{"sqlDialect", "MyWarehouse2000"})
	if got := ContentType(ann); got != "application/sql; dialect=MyWarehouse2000" {
		t.Errorf("dialect must pass through unnormalized: %q", got)
	}
}
