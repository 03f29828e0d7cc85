package sqlfhir

// Library is a FHIR Library resource assembled from an annotated SQL source.
// Field order matches the emitted JSON key order; all optional fields carry
// omitempty so that pruned documents contain no vacuous keys.
type Library struct {
	ResourceType    string                `json:"resourceType"`
	ID              string                `json:"id,omitempty"`
	Meta            *Meta                 `json:"meta,omitempty"`
	Extension       []Extension           `json:"extension,omitempty"`
	URL             string                `json:"url,omitempty"`
	Identifier      []Identifier          `json:"identifier,omitempty"`
	Version         string                `json:"version,omitempty"`
	Name            string                `json:"name,omitempty"`
	Title           string                `json:"title,omitempty"`
	Status          string                `json:"status,omitempty"`
	Experimental    *bool                 `json:"experimental,omitempty"`
	Type            *CodeableConcept      `json:"type,omitempty"`
	Subject         string                `json:"subject,omitempty"`
	Date            string                `json:"date,omitempty"`
	Publisher       string                `json:"publisher,omitempty"`
	Contact         []ContactDetail       `json:"contact,omitempty"`
	Author          []ContactDetail       `json:"author,omitempty"`
	Description     string                `json:"description,omitempty"`
	Purpose         string                `json:"purpose,omitempty"`
	Usage           string                `json:"usage,omitempty"`
	Copyright       string                `json:"copyright,omitempty"`
	ApprovalDate    string                `json:"approvalDate,omitempty"`
	LastReviewDate  string                `json:"lastReviewDate,omitempty"`
	Jurisdiction    []CodeableConcept     `json:"jurisdiction,omitempty"`
	RelatedArtifact []RelatedArtifact     `json:"relatedArtifact,omitempty"`
	Parameter       []ParameterDefinition `json:"parameter,omitempty"`
	Content         []Attachment          `json:"content,omitempty"`
}

// Meta holds resource-level metadata.
type Meta struct {
	VersionID   string `json:"versionId,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Coding is a single code from a terminology system.
type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// CodeableConcept wraps one or more codings.
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
}

// ContactDetail names a contact (author, publisher contact).
type ContactDetail struct {
	Name    string         `json:"name,omitempty"`
	Telecom []ContactPoint `json:"telecom,omitempty"`
}

// ContactPoint is a telecom entry for a contact.
type ContactPoint struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Identifier is a business identifier for the library.
type Identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

// RelatedArtifact records a resource this library relates to.
// Dependencies carry Type "depends-on" with either a Resource reference
// or a human-readable Display.
type RelatedArtifact struct {
	Type     string `json:"type"`
	Display  string `json:"display,omitempty"`
	Resource string `json:"resource,omitempty"`
}

// ParameterDefinition describes a parameter the SQL query expects.
type ParameterDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Attachment carries the base64-encoded SQL content.
type Attachment struct {
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data,omitempty"`
	Title       string `json:"title,omitempty"`
	Creation    string `json:"creation,omitempty"`
}

// Extension is a pass-through field for annotations that do not map to a
// well-known Library field. Exactly one value member is set per entry.
type Extension struct {
	URL          string   `json:"url"`
	ValueBoolean *bool    `json:"valueBoolean,omitempty"`
	ValueInteger *int64   `json:"valueInteger,omitempty"`
	ValueDecimal *float64 `json:"valueDecimal,omitempty"`
	ValueString  string   `json:"valueString,omitempty"`
}
