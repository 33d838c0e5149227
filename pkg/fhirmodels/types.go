package fhirmodels

// Common FHIR R4 datatypes and value set constants used by the FHIR
// projections of the dashboard's domain models.

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

// AdministrativeGender codes.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderOther   = "other"
	GenderUnknown = "unknown"
)

// Danish CPR number identifier system OID.
const CPRSystem = "urn:oid:1.2.208.176.1.2"

// SNOMED CT codes for tobacco use findings, used for the smoking-status
// observation embedded in the patient projection.
const (
	SnomedSystem        = "http://snomed.info/sct"
	SnomedNeverSmoker   = "266919005"
	SnomedFormerSmoker  = "8517006"
	SnomedCurrentSmoker = "77176002"
)

// FormatReference renders a FHIR reference string such as "Patient/123".
func FormatReference(resourceType, id string) string {
	return resourceType + "/" + id
}
