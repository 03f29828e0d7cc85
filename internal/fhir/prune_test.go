package fhir

import (
	"reflect"
	"testing"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

func TestPrune_DropsVacuousEntries(t *testing.T) {
	lib := &sqlfhir.Library{
		ResourceType: "Library",
		Meta:         &sqlfhir.Meta{},
		Extension: []sqlfhir.Extension{
			{URL: "http://example.com/empty"},
			{URL: "http://example.com/kept", ValueString: "x"},
		},
		Identifier: []sqlfhir.Identifier{
			{System: "sys"},
			{System: "sys", Value: "LIB-1"},
		},
		Contact: []sqlfhir.ContactDetail{
			{},
			{Telecom: []sqlfhir.ContactPoint{{}}},
			{Name: "Ops Team"},
		},
		Type: &sqlfhir.CodeableConcept{Coding: []sqlfhir.Coding{{System: "sys"}}},
		RelatedArtifact: []sqlfhir.RelatedArtifact{
			{Type: "depends-on"},
			{Type: "depends-on", Resource: "Library/dep"},
		},
		Parameter: []sqlfhir.ParameterDefinition{
			{Type: "string"},
			{Name: "user_id", Type: "string"},
		},
		Content: []sqlfhir.Attachment{{}},
	}

	Prune(lib)

	if lib.Meta != nil {
		t.Error("empty meta should be dropped")
	}
	if len(lib.Extension) != 1 || lib.Extension[0].ValueString != "x" {
		t.Errorf("unexpected extensions after prune: %+v", lib.Extension)
	}
	if len(lib.Identifier) != 1 || lib.Identifier[0].Value != "LIB-1" {
		t.Errorf("unexpected identifiers after prune: %+v", lib.Identifier)
	}
	if len(lib.Contact) != 1 || lib.Contact[0].Name != "Ops Team" {
		t.Errorf("unexpected contacts after prune: %+v", lib.Contact)
	}
	if lib.Type != nil {
		t.Error("type with only informationless codings should be dropped")
	}
	if len(lib.RelatedArtifact) != 1 || lib.RelatedArtifact[0].Resource != "Library/dep" {
		t.Errorf("unexpected artifacts after prune: %+v", lib.RelatedArtifact)
	}
	if len(lib.Parameter) != 1 || lib.Parameter[0].Name != "user_id" {
		t.Errorf("unexpected parameters after prune: %+v", lib.Parameter)
	}
	if len(lib.Content) != 0 {
		t.Error("empty attachment should be dropped")
	}
}

func TestPrune_KeepsPopulatedEntries(t *testing.T) {
	lib := NewBuilderWithClock(fixedClock).BuildFromContent(
		"-- @title: Keep Me\n-- @author: Team\nSELECT 1;", nil)

	before := *lib
	Prune(lib)

	if lib.Title != "Keep Me" || len(lib.Author) != 1 || lib.Type == nil {
		t.Errorf("prune removed populated fields: %+v", lib)
	}
	if !reflect.DeepEqual(before, *lib) {
		t.Error("pruning an already-pruned library must be a no-op")
	}
}

func TestPrune_Idempotent(t *testing.T) {
	lib := &sqlfhir.Library{
		ResourceType: "Library",
		Meta:         &sqlfhir.Meta{VersionID: "1"},
		Extension:    []sqlfhir.Extension{{URL: "u"}},
		Jurisdiction: []sqlfhir.CodeableConcept{{Coding: []sqlfhir.Coding{{System: "s"}}}},
	}

	Prune(lib)
	once := *lib
	Prune(lib)

	if !reflect.DeepEqual(once, *lib) {
		t.Errorf("second prune changed the document: %+v vs %+v", once, *lib)
	}
}
