package console

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/preop/preop/internal/domain/patient"
)

// RenderPatientTable formats search results as an aligned table, one row
// per patient, in the order given.
func RenderPatientTable(records []*patient.Record) string {
	if len(records) == 0 {
		return "Ingen patienter fundet.\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CPR\tNAVN\tALDER\tASA\tINDGREB\tDATO\tTID")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			rec.CPRNumber,
			rec.FullName(),
			rec.Age,
			rec.ASAScore,
			rec.ScheduledProcedure,
			rec.ProcedureDate.Format("2006-01-02"),
			rec.ProcedureTime,
		)
	}
	w.Flush()
	return b.String()
}

// RenderSchedule formats a day's schedule slot by slot. Slots without a
// patient render as free.
func RenderSchedule(date time.Time, records []*patient.Record) string {
	bySlot := make(map[string][]*patient.Record, len(records))
	for _, rec := range records {
		bySlot[rec.ProcedureTime] = append(bySlot[rec.ProcedureTime], rec)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Program for %s\n\n", date.Format("2006-01-02"))
	for _, slot := range patient.TimeSlots {
		booked := bySlot[slot]
		if len(booked) == 0 {
			fmt.Fprintf(&b, "  %s  (ledig)\n", slot)
			continue
		}
		for _, rec := range booked {
			fmt.Fprintf(&b, "  %s  %s  ASA %d  %s\n",
				slot, rec.FullName(), rec.ASAScore, rec.ScheduledProcedure)
		}
	}
	return b.String()
}

// RenderDetails formats the full clinician-facing record, including the
// generated assessment and its explanation factors.
func RenderDetails(rec *patient.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", rec.FullName(), rec.CPRNumber)
	fmt.Fprintf(&b, "Alder: %d  Køn: %s  BMI: %.1f  Rygning: %s\n",
		rec.Age, rec.Gender, rec.BMI, rec.SmokingStatus.Display())
	fmt.Fprintf(&b, "Indgreb: %s, %s kl. %s\n",
		rec.ScheduledProcedure, rec.ProcedureDate.Format("2006-01-02"), rec.ProcedureTime)
	fmt.Fprintf(&b, "ASA: %d (%s)\n", rec.ASAScore, rec.ASAExplanation)

	if len(rec.Comorbidities) > 0 {
		fmt.Fprintf(&b, "Komorbiditeter: %s\n", strings.Join(rec.Comorbidities, ", "))
	}
	if len(rec.Allergies) > 0 {
		fmt.Fprintf(&b, "Allergier: %s\n", strings.Join(rec.Allergies, ", "))
	}
	if len(rec.CurrentMedications) > 0 {
		fmt.Fprintf(&b, "Medicin: %s\n", strings.Join(rec.CurrentMedications, ", "))
	}
	if len(rec.RiskIndicators) > 0 {
		b.WriteString("Risikoindikatorer:\n")
		for _, ri := range rec.RiskIndicators {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", strings.ToUpper(string(ri.Severity)), ri.Name, ri.Value)
		}
	}

	fmt.Fprintf(&b, "\nAI-vurdering (konfidens %.0f%%):\n%s\n", rec.ModelConfidence*100, rec.AISummary)
	if len(rec.AIExplanation) > 0 {
		b.WriteString("Forklaringsfaktorer:\n")
		for _, f := range rec.AIExplanation {
			fmt.Fprintf(&b, "  %3.0f%%  %s: %s\n", f.Weight*100, f.Factor, f.Impact)
		}
	}
	if rec.FullHistory != "" {
		fmt.Fprintf(&b, "\nAnamnese:\n%s\n", rec.FullHistory)
	}
	if rec.Notes != "" {
		fmt.Fprintf(&b, "\nNoter: %s\n", rec.Notes)
	}
	return b.String()
}

// RenderSummary formats the compact overlay used from the calendar: the
// headline assessment without the full history.
func RenderSummary(rec *patient.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  ASA %d  %s kl. %s\n",
		rec.FullName(), rec.ASAScore, rec.ProcedureDate.Format("2006-01-02"), rec.ProcedureTime)
	fmt.Fprintf(&b, "%s\n", rec.AISummary)
	return b.String()
}
