package fhir

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/healthforge/sqlfhir/internal/annotations"
	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

// DefaultLibraryID is used when a library is built from raw content
// without a source file to derive an ID from.
const DefaultLibraryID = "sql-library"

// defaultAttachmentTitle names the content attachment for in-memory builds.
const defaultAttachmentTitle = "query.sql"

// extensionURLPrefix is the base URL for pass-through extension entries
// generated from annotation keys that map to no Library field.
const extensionURLPrefix = "http://healthforge.dev/fhir/StructureDefinition/sql-"

// Builder assembles FHIR Library resources from SQL sources.
// The zero defaults produce a draft library; DefaultStatus and
// DefaultPublisher apply only when the source carries no matching
// annotation. Builder is stateless across calls and safe for concurrent
// use by multiple goroutines.
type Builder struct {
	DefaultStatus    string
	DefaultPublisher string

	now func() time.Time
}

// NewBuilder creates a builder with the system clock and "draft" status.
func NewBuilder() *Builder {
	return &Builder{DefaultStatus: "draft", now: time.Now}
}

// NewBuilderWithClock creates a builder with a custom clock.
// This is primarily useful for deterministic tests.
// Panics if now is nil.
func NewBuilderWithClock(now func() time.Time) *Builder {
	if now == nil {
		panic("now cannot be nil")
	}
	return &Builder{DefaultStatus: "draft", now: now}
}

// BuildFromFile reads a SQL file, extracts its annotations and builds a
// Library. The library ID is derived from the file stem (spaces and
// underscores become hyphens) and a deterministic path-based identifier
// is attached unless the file carries an @identifier annotation.
// Missing or unreadable files return a *sqlfhir.FileAccessError.
func (b *Builder) BuildFromFile(path string) (*sqlfhir.Library, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &sqlfhir.FileAccessError{Path: path, Err: err}
	}
	return b.BuildFromSource(path, string(content)), nil
}

// BuildFromSource builds a Library from already-read content attributed to
// the given source path. Used by batch processing where the directory
// scanner has read the file once already.
func (b *Builder) BuildFromSource(path, sql string) *sqlfhir.Library {
	ann := annotations.ParseContent(sql)
	identity := &sqlfhir.Identifier{
		System: IdentifierSystem,
		Value:  "urn:uuid:" + LibraryIdentity(path).String(),
	}
	return b.build(sql, ann, slugFromPath(path), filepath.Base(path), identity)
}

// BuildFromContent builds a Library from raw SQL content. A nil annotation
// map is parsed from the content. Assembly always succeeds: an empty map
// produces a minimal library skeleton with only structural defaults.
func (b *Builder) BuildFromContent(sql string, ann *sqlfhir.AnnotationMap) *sqlfhir.Library {
	if ann == nil {
		ann = annotations.ParseContent(sql)
	}
	return b.build(sql, ann, DefaultLibraryID, defaultAttachmentTitle, nil)
}

func (b *Builder) build(sql string, ann *sqlfhir.AnnotationMap, id, filename string, fileIdentity *sqlfhir.Identifier) *sqlfhir.Library {
	nowStr := b.now().UTC().Format(time.RFC3339)

	lib := &sqlfhir.Library{
		ResourceType: "Library",
		ID:           id,
		Meta:         &sqlfhir.Meta{VersionID: "1", LastUpdated: nowStr},
		Status:       b.DefaultStatus,
		Publisher:    b.DefaultPublisher,
		Type: &sqlfhir.CodeableConcept{Coding: []sqlfhir.Coding{{
			System:  sqlfhir.LibraryTypeSystem,
			Code:    sqlfhir.LibraryTypeCode,
			Display: "Logic Library",
		}}},
		Content: []sqlfhir.Attachment{{
			ContentType: ContentType(ann),
			Data:        base64.StdEncoding.EncodeToString([]byte(sql)),
			Title:       filename,
			Creation:    nowStr,
		}},
	}
	if lib.Status == "" {
		lib.Status = "draft"
	}

	b.applyAnnotations(lib, ann)
	b.addDependencies(lib, ann)

	if fileIdentity != nil && len(lib.Identifier) == 0 {
		lib.Identifier = []sqlfhir.Identifier{*fileIdentity}
	}

	if lib.Name == "" && lib.Title != "" {
		lib.Name = PascalCase(lib.Title)
	}

	Prune(lib)
	return lib
}

// applyAnnotations maps well-known keys onto Library fields in source
// order. Keys consumed by MIME synthesis and dependency handling are
// excluded; everything else unrecognized becomes an extension entry.
func (b *Builder) applyAnnotations(lib *sqlfhir.Library, ann *sqlfhir.AnnotationMap) {
	for _, key := range ann.Keys() {
		v, _ := ann.Get(key)

		switch key {
		case "id":
			lib.ID = v.String()
		case "title":
			lib.Title = v.String()
		case "name":
			lib.Name = v.String()
		case "description":
			lib.Description = v.String()
		case "version":
			lib.Version = v.String()
		case "status":
			lib.Status = v.String()
		case "publisher":
			lib.Publisher = v.String()
		case "copyright":
			lib.Copyright = v.String()
		case "purpose":
			lib.Purpose = v.String()
		case "usage":
			lib.Usage = v.String()
		case "url":
			lib.URL = v.String()
		case "subject":
			lib.Subject = v.String()
		case "approvalDate":
			lib.ApprovalDate = v.String()
		case "lastReviewDate":
			lib.LastReviewDate = v.String()
		case "date":
			lib.Date = formatDate(v.String())
		case "author":
			lib.Author = contactDetails(v)
		case "contact":
			lib.Contact = contactDetails(v)
		case "identifier":
			if s := strings.TrimSpace(v.String()); s != "" {
				lib.Identifier = []sqlfhir.Identifier{{System: IdentifierSystem, Value: s}}
			}
		case "experimental":
			// Honored only when the value coerced to a boolean.
			if v.Kind() == sqlfhir.KindBool {
				val := v.Bool()
				lib.Experimental = &val
			}
		case "jurisdiction":
			lib.Jurisdiction = jurisdictions(v)
		case "sqlDialect", "dialectVersion",
			"relatedDependency", "database", "schema",
			"tables", "dependencies", "parameters":
			// consumed by ContentType and addDependencies
		default:
			if ext, ok := extensionFor(key, v); ok {
				lib.Extension = append(lib.Extension, ext)
			}
		}
	}
}

// addDependencies converts dependency-flavored annotations into
// relatedArtifact and parameter entries, preserving source order.
func (b *Builder) addDependencies(lib *sqlfhir.Library, ann *sqlfhir.AnnotationMap) {
	if v, ok := ann.Get("relatedDependency"); ok {
		for _, dep := range valueStrings(v) {
			dep = strings.TrimSpace(dep)
			if dep == "" {
				continue
			}
			lib.RelatedArtifact = append(lib.RelatedArtifact, sqlfhir.RelatedArtifact{
				Type:     "depends-on",
				Resource: dep,
			})
		}
	}

	database, hasDatabase := ann.Get("database")
	schema, hasSchema := ann.Get("schema")
	if hasDatabase || hasSchema {
		display := "Database: Unknown"
		if hasDatabase {
			display = "Database: " + database.String()
		}
		if hasSchema {
			display += ", Schema: " + schema.String()
		}
		lib.RelatedArtifact = append(lib.RelatedArtifact, sqlfhir.RelatedArtifact{
			Type:    "depends-on",
			Display: display,
		})
	}

	tables, ok := ann.Get("tables")
	if !ok {
		tables, ok = ann.Get("dependencies")
	}
	if ok && tables.Kind() == sqlfhir.KindList {
		for _, table := range tables.List() {
			lib.RelatedArtifact = append(lib.RelatedArtifact, sqlfhir.RelatedArtifact{
				Type:    "depends-on",
				Display: "Table: " + table,
			})
		}
	}

	if params, ok := ann.Get("parameters"); ok && params.Kind() == sqlfhir.KindList {
		for _, param := range params.List() {
			lib.Parameter = append(lib.Parameter, sqlfhir.ParameterDefinition{
				Name: param,
				Type: "string",
			})
		}
	}
}

// Export serializes the document as indented JSON to the given path,
// creating parent directories as needed. Failures return a
// *sqlfhir.WriteError naming the target path.
func (b *Builder) Export(lib *sqlfhir.Library, path string) error {
	Prune(lib)

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &sqlfhir.WriteError{Path: path, Err: err}
		}
	}

	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return &sqlfhir.WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &sqlfhir.WriteError{Path: path, Err: err}
	}
	return nil
}

// contactDetails converts an author/contact annotation to ContactDetail
// entries; a list value yields one entry per element.
func contactDetails(v sqlfhir.Value) []sqlfhir.ContactDetail {
	var out []sqlfhir.ContactDetail
	for _, name := range valueStrings(v) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, sqlfhir.ContactDetail{Name: name})
	}
	return out
}

// jurisdictions converts a jurisdiction annotation to ISO-3166 codeable
// concepts. Codes of up to three characters are uppercased.
func jurisdictions(v sqlfhir.Value) []sqlfhir.CodeableConcept {
	var out []sqlfhir.CodeableConcept
	for _, j := range valueStrings(v) {
		j = strings.TrimSpace(j)
		if j == "" {
			continue
		}
		code := j
		if len(code) <= 3 {
			code = strings.ToUpper(code)
		}
		out = append(out, sqlfhir.CodeableConcept{Coding: []sqlfhir.Coding{{
			System:  "urn:iso:std:iso:3166",
			Code:    code,
			Display: j,
		}}})
	}
	return out
}

// extensionFor builds a pass-through extension for an unrecognized key.
// Returns ok=false for values that would serialize to nothing.
func extensionFor(key string, v sqlfhir.Value) (sqlfhir.Extension, bool) {
	ext := sqlfhir.Extension{URL: extensionURLPrefix + key}

	switch v.Kind() {
	case sqlfhir.KindBool:
		b := v.Bool()
		ext.ValueBoolean = &b
	case sqlfhir.KindInt:
		i := v.Int()
		ext.ValueInteger = &i
	case sqlfhir.KindFloat:
		f := v.Float()
		ext.ValueDecimal = &f
	case sqlfhir.KindList:
		items := v.List()
		if len(items) == 0 {
			return sqlfhir.Extension{}, false
		}
		ext.ValueString = strings.Join(items, ", ")
	case sqlfhir.KindString:
		s := strings.TrimSpace(v.Str())
		if s == "" {
			return sqlfhir.Extension{}, false
		}
		ext.ValueString = s
	}

	return ext, true
}

// valueStrings flattens a value to its string elements: a list yields its
// elements, a scalar yields its canonical rendering.
func valueStrings(v sqlfhir.Value) []string {
	if v.Kind() == sqlfhir.KindList {
		return v.List()
	}
	return []string{v.String()}
}

// dateLayouts are the accepted input formats for @date annotations,
// tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// formatDate normalizes a date annotation to YYYY-MM-DD.
// Unparseable values pass through unchanged.
func formatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// slugFromPath derives a library ID from a file path: the base name
// without extension, with spaces and underscores replaced by hyphens.
func slugFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ReplaceAll(stem, " ", "-")
	return strings.ReplaceAll(stem, "_", "-")
}
