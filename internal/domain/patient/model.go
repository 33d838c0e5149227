// Package patient holds the pre-assessment patient record model and the
// read-only query operations the dashboard is built on. Records are fabricated
// demo data: populated once at startup and never mutated afterwards.
package patient

import (
	"fmt"
	"time"

	"github.com/preop/preop/pkg/fhirmodels"
)

// Gender is the administrative gender of a patient.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// SmokingStatus classifies tobacco use.
type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "never"
	SmokingFormer  SmokingStatus = "former"
	SmokingCurrent SmokingStatus = "current"
)

// Display returns the Danish UI label for the status.
func (s SmokingStatus) Display() string {
	switch s {
	case SmokingNever:
		return "Ikke-ryger"
	case SmokingFormer:
		return "Tidligere ryger"
	case SmokingCurrent:
		return "Nuværende ryger"
	}
	return string(s)
}

// Severity grades a risk indicator.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskIndicator is a single flagged clinical finding.
type RiskIndicator struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Severity Severity `json:"severity"`
}

// ExplanationFactor is one weighted input of the model's risk explanation.
// Weights are in [0,1]; the factors of a record conventionally sum to 1 but
// are not required to.
type ExplanationFactor struct {
	Factor string  `json:"factor"`
	Weight float64 `json:"weight"`
	Impact string  `json:"impact"`
}

// Record is an immutable pre-assessment patient record.
type Record struct {
	ID        string `json:"id"`
	CPRNumber string `json:"cpr_number"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Age    int    `json:"age"`
	Gender Gender `json:"gender"`

	ASAScore       int    `json:"asa_score"`
	ASAExplanation string `json:"asa_explanation"`

	ScheduledProcedure string    `json:"scheduled_procedure"`
	ProcedureDate      time.Time `json:"procedure_date"`
	ProcedureTime      string    `json:"procedure_time"` // canonical HH:MM

	BMI                float64       `json:"bmi"`
	SmokingStatus      SmokingStatus `json:"smoking_status"`
	Comorbidities      []string      `json:"comorbidities"`
	Allergies          []string      `json:"allergies"`
	CurrentMedications []string      `json:"current_medications"`

	RiskIndicators []RiskIndicator `json:"risk_indicators"`

	AISummary       string              `json:"ai_summary"`
	ModelConfidence float64             `json:"model_confidence"`
	AIExplanation   []ExplanationFactor `json:"ai_explanation"`

	FullHistory string `json:"full_history"`
	Notes       string `json:"notes,omitempty"`
}

// FullName returns "First Last", the form the search operation matches on.
func (r *Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// TimeSlots is the fixed 30-minute procedure grid the schedule renders,
// 08:00 through 16:00.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var slots []string
	for h := 8; h <= 16; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		if h < 16 {
			slots = append(slots, fmt.Sprintf("%02d:30", h))
		}
	}
	return slots
}

var validTimeSlots = func() map[string]bool {
	m := make(map[string]bool, len(TimeSlots))
	for _, s := range TimeSlots {
		m[s] = true
	}
	return m
}()

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
}

var validSmokingStatuses = map[SmokingStatus]bool{
	SmokingNever:   true,
	SmokingFormer:  true,
	SmokingCurrent: true,
}

var validSeverities = map[Severity]bool{
	SeverityLow:    true,
	SeverityMedium: true,
	SeverityHigh:   true,
}

// Validate checks the record's data-integrity invariants. It runs once when
// the store is built; queries assume records are already valid.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if r.FirstName == "" || r.LastName == "" {
		return fmt.Errorf("record %s: first and last name are required", r.ID)
	}
	if r.Age <= 0 {
		return fmt.Errorf("record %s: age must be positive, got %d", r.ID, r.Age)
	}
	if !validGenders[r.Gender] {
		return fmt.Errorf("record %s: invalid gender %q", r.ID, r.Gender)
	}
	if r.ASAScore < 1 || r.ASAScore > 5 {
		return fmt.Errorf("record %s: ASA score must be 1-5, got %d", r.ID, r.ASAScore)
	}
	if r.ProcedureDate.IsZero() {
		return fmt.Errorf("record %s: procedure date is required", r.ID)
	}
	if !validTimeSlots[r.ProcedureTime] {
		return fmt.Errorf("record %s: procedure time %q is not a valid schedule slot", r.ID, r.ProcedureTime)
	}
	if r.BMI <= 0 {
		return fmt.Errorf("record %s: BMI must be positive, got %g", r.ID, r.BMI)
	}
	if !validSmokingStatuses[r.SmokingStatus] {
		return fmt.Errorf("record %s: invalid smoking status %q", r.ID, r.SmokingStatus)
	}
	for _, ri := range r.RiskIndicators {
		if !validSeverities[ri.Severity] {
			return fmt.Errorf("record %s: invalid severity %q for indicator %q", r.ID, ri.Severity, ri.Name)
		}
	}
	if r.ModelConfidence < 0 || r.ModelConfidence > 1 {
		return fmt.Errorf("record %s: model confidence must be in [0,1], got %g", r.ID, r.ModelConfidence)
	}
	for _, f := range r.AIExplanation {
		if f.Weight < 0 || f.Weight > 1 {
			return fmt.Errorf("record %s: explanation weight for %q must be in [0,1], got %g", r.ID, f.Factor, f.Weight)
		}
	}
	return nil
}

// ToFHIR projects the record as a FHIR R4 Patient resource with the CPR
// identifier and a contained smoking-status extension coding.
func (r *Record) ToFHIR() map[string]interface{} {
	result := map[string]interface{}{
		"resourceType": "Patient",
		"id":           r.ID,
		"identifier": []fhirmodels.Identifier{{
			Use:    "official",
			System: fhirmodels.CPRSystem,
			Value:  r.CPRNumber,
		}},
		"name": []fhirmodels.HumanName{{
			Use:    "official",
			Family: r.LastName,
			Given:  []string{r.FirstName},
		}},
		"gender": string(r.Gender),
	}
	if code := r.smokingCoding(); code != nil {
		result["extension"] = []map[string]interface{}{{
			"url":         "http://hl7.org/fhir/us/core/StructureDefinition/us-core-smokingstatus",
			"valueCoding": *code,
		}}
	}
	return result
}

func (r *Record) smokingCoding() *fhirmodels.Coding {
	var code string
	switch r.SmokingStatus {
	case SmokingNever:
		code = fhirmodels.SnomedNeverSmoker
	case SmokingFormer:
		code = fhirmodels.SnomedFormerSmoker
	case SmokingCurrent:
		code = fhirmodels.SnomedCurrentSmoker
	default:
		return nil
	}
	return &fhirmodels.Coding{
		System:  fhirmodels.SnomedSystem,
		Code:    code,
		Display: r.SmokingStatus.Display(),
	}
}
