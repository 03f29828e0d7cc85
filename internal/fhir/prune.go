package fhir

import (
	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

// Prune removes vacuous entries from the document at every nesting level
// so the emitted JSON contains no empty keys: empty strings and slices are
// handled by omitempty, this pass drops container entries whose contents
// are all empty. Pruning is idempotent.
func Prune(lib *sqlfhir.Library) {
	if lib.Meta != nil && lib.Meta.VersionID == "" && lib.Meta.LastUpdated == "" {
		lib.Meta = nil
	}

	lib.Extension = pruneExtensions(lib.Extension)
	lib.Identifier = pruneIdentifiers(lib.Identifier)
	lib.Contact = pruneContacts(lib.Contact)
	lib.Author = pruneContacts(lib.Author)
	lib.Jurisdiction = pruneConcepts(lib.Jurisdiction)

	if lib.Type != nil {
		lib.Type.Coding = pruneCodings(lib.Type.Coding)
		if len(lib.Type.Coding) == 0 {
			lib.Type = nil
		}
	}

	lib.RelatedArtifact = pruneArtifacts(lib.RelatedArtifact)
	lib.Parameter = pruneParameters(lib.Parameter)
	lib.Content = pruneAttachments(lib.Content)
}

func pruneExtensions(exts []sqlfhir.Extension) []sqlfhir.Extension {
	var out []sqlfhir.Extension
	for _, e := range exts {
		if e.ValueBoolean == nil && e.ValueInteger == nil && e.ValueDecimal == nil && e.ValueString == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func pruneIdentifiers(ids []sqlfhir.Identifier) []sqlfhir.Identifier {
	var out []sqlfhir.Identifier
	for _, id := range ids {
		if id.Value == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

func pruneContacts(contacts []sqlfhir.ContactDetail) []sqlfhir.ContactDetail {
	var out []sqlfhir.ContactDetail
	for _, c := range contacts {
		var telecom []sqlfhir.ContactPoint
		for _, t := range c.Telecom {
			if t.System == "" && t.Value == "" {
				continue
			}
			telecom = append(telecom, t)
		}
		c.Telecom = telecom
		if c.Name == "" && len(c.Telecom) == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

func pruneCodings(codings []sqlfhir.Coding) []sqlfhir.Coding {
	var out []sqlfhir.Coding
	for _, c := range codings {
		// A coding with only a system carries no information.
		if c.Code == "" && c.Display == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func pruneConcepts(concepts []sqlfhir.CodeableConcept) []sqlfhir.CodeableConcept {
	var out []sqlfhir.CodeableConcept
	for _, cc := range concepts {
		cc.Coding = pruneCodings(cc.Coding)
		if len(cc.Coding) == 0 {
			continue
		}
		out = append(out, cc)
	}
	return out
}

func pruneArtifacts(artifacts []sqlfhir.RelatedArtifact) []sqlfhir.RelatedArtifact {
	var out []sqlfhir.RelatedArtifact
	for _, a := range artifacts {
		if a.Resource == "" && a.Display == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

func pruneParameters(params []sqlfhir.ParameterDefinition) []sqlfhir.ParameterDefinition {
	var out []sqlfhir.ParameterDefinition
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func pruneAttachments(content []sqlfhir.Attachment) []sqlfhir.Attachment {
	var out []sqlfhir.Attachment
	for _, a := range content {
		if a.ContentType == "" && a.Data == "" && a.Title == "" && a.Creation == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}
