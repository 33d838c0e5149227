package console

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preop/preop/internal/domain/patient"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	repo, err := patient.NewSeededRepo()
	if err != nil {
		t.Fatalf("seeding repo: %v", err)
	}
	return NewState(patient.NewService(repo))
}

func TestNewState_DoctorSearchHome(t *testing.T) {
	s := newTestState(t)
	if s.Role() != RoleDoctor {
		t.Errorf("role = %q, want %q", s.Role(), RoleDoctor)
	}
	if s.View() != ViewSearch {
		t.Errorf("view = %q, want %q", s.View(), ViewSearch)
	}
	if s.Selected() != nil {
		t.Error("fresh state should have no selection")
	}
}

func TestSwitchRole_PatientLandsOnChatbot(t *testing.T) {
	s := newTestState(t)
	if err := s.SwitchRole(RolePatient); err != nil {
		t.Fatalf("SwitchRole: %v", err)
	}
	if s.View() != ViewChatbot {
		t.Errorf("view = %q, want %q", s.View(), ViewChatbot)
	}
}

func TestSwitchRole_ClearsSelection(t *testing.T) {
	s := newTestState(t)
	if err := s.SelectPatient(context.Background(), "1"); err != nil {
		t.Fatalf("SelectPatient: %v", err)
	}
	if err := s.SwitchRole(RolePatient); err != nil {
		t.Fatalf("SwitchRole: %v", err)
	}
	if s.Selected() != nil {
		t.Error("role switch should drop the selection")
	}

	if err := s.SwitchRole(RoleDoctor); err != nil {
		t.Fatalf("SwitchRole: %v", err)
	}
	if s.View() != ViewSearch {
		t.Errorf("doctor home view = %q, want %q", s.View(), ViewSearch)
	}
}

func TestSwitchRole_Unknown(t *testing.T) {
	s := newTestState(t)
	if err := s.SwitchRole(Role("admin")); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestNavigate(t *testing.T) {
	s := newTestState(t)
	if err := s.Navigate(ViewCalendar); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if s.View() != ViewCalendar {
		t.Errorf("view = %q, want %q", s.View(), ViewCalendar)
	}

	if err := s.Navigate(ViewDetails); err == nil {
		t.Error("details view should not be directly navigable")
	}
	if err := s.Navigate(ViewChatbot); err == nil {
		t.Error("chatbot view should not be reachable in doctor role")
	}
}

func TestNavigate_PatientRoleRejected(t *testing.T) {
	s := newTestState(t)
	if err := s.SwitchRole(RolePatient); err != nil {
		t.Fatalf("SwitchRole: %v", err)
	}
	if err := s.Navigate(ViewSearch); err == nil {
		t.Fatal("patient role should not navigate doctor views")
	}
}

func TestSelectPatient_OpensDetails(t *testing.T) {
	s := newTestState(t)
	if err := s.SelectPatient(context.Background(), "2"); err != nil {
		t.Fatalf("SelectPatient: %v", err)
	}
	if s.View() != ViewDetails {
		t.Errorf("view = %q, want %q", s.View(), ViewDetails)
	}
	if got := s.Selected(); got == nil || got.ID != "2" {
		t.Errorf("selected = %+v, want record 2", got)
	}
}

func TestSelectPatient_UnknownLeavesStateUntouched(t *testing.T) {
	s := newTestState(t)
	err := s.SelectPatient(context.Background(), "no-such-id")
	if !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.View() != ViewSearch {
		t.Errorf("view changed to %q on failed selection", s.View())
	}
	if s.Selected() != nil {
		t.Error("selection set on failed lookup")
	}
}

func TestBackToCalendar(t *testing.T) {
	s := newTestState(t)
	if err := s.SelectPatient(context.Background(), "1"); err != nil {
		t.Fatalf("SelectPatient: %v", err)
	}
	s.BackToCalendar()
	if s.View() != ViewCalendar {
		t.Errorf("view = %q, want %q", s.View(), ViewCalendar)
	}
	if s.Selected() != nil {
		t.Error("selection should be dropped on back")
	}
}

func TestSummaryOverlay(t *testing.T) {
	s := newTestState(t)
	if err := s.Navigate(ViewCalendar); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if err := s.OpenSummary(context.Background(), "3"); err != nil {
		t.Fatalf("OpenSummary: %v", err)
	}

	rec, open := s.SummaryPatient()
	if !open || rec == nil || rec.ID != "3" {
		t.Fatalf("overlay = (%+v, %v), want record 3 open", rec, open)
	}
	if s.View() != ViewCalendar {
		t.Errorf("overlay changed the view to %q", s.View())
	}

	s.CloseSummary()
	if _, open := s.SummaryPatient(); open {
		t.Error("overlay still open after close")
	}
}

func TestSummaryOverlay_UnknownPatient(t *testing.T) {
	s := newTestState(t)
	if err := s.OpenSummary(context.Background(), "nope"); !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, open := s.SummaryPatient(); open {
		t.Error("overlay opened on failed lookup")
	}
}

func TestViewDetailsFromSummary(t *testing.T) {
	s := newTestState(t)
	if err := s.Navigate(ViewCalendar); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if err := s.OpenSummary(context.Background(), "4"); err != nil {
		t.Fatalf("OpenSummary: %v", err)
	}
	if err := s.ViewDetailsFromSummary(); err != nil {
		t.Fatalf("ViewDetailsFromSummary: %v", err)
	}
	if s.View() != ViewDetails {
		t.Errorf("view = %q, want %q", s.View(), ViewDetails)
	}
	if got := s.Selected(); got == nil || got.ID != "4" {
		t.Errorf("selected = %+v, want record 4", got)
	}
	if _, open := s.SummaryPatient(); open {
		t.Error("overlay should close when promoting to details")
	}

	if err := s.ViewDetailsFromSummary(); err == nil {
		t.Error("expected error with no overlay open")
	}
}

func TestRenderPatientTable(t *testing.T) {
	records := patient.SeedRecords()
	out := RenderPatientTable(records)
	for _, rec := range records {
		if !strings.Contains(out, rec.CPRNumber) {
			t.Errorf("table missing CPR %s", rec.CPRNumber)
		}
		if !strings.Contains(out, rec.FullName()) {
			t.Errorf("table missing name %s", rec.FullName())
		}
	}
}

func TestRenderPatientTable_Empty(t *testing.T) {
	out := RenderPatientTable(nil)
	if !strings.Contains(out, "Ingen patienter") {
		t.Errorf("empty table output = %q", out)
	}
}

func TestRenderSchedule_MarksFreeSlots(t *testing.T) {
	repo, err := patient.NewSeededRepo()
	if err != nil {
		t.Fatalf("seeding repo: %v", err)
	}
	svc := patient.NewService(repo)
	records := svc.GetScheduledPatients(context.Background(), patient.DefaultScheduleDate)

	out := RenderSchedule(patient.DefaultScheduleDate, records)
	if !strings.Contains(out, "Anna Hansen") {
		t.Error("schedule missing booked patient")
	}
	if !strings.Contains(out, "(ledig)") {
		t.Error("schedule should mark free slots")
	}
	if !strings.Contains(out, "09:00") {
		t.Error("schedule should list every slot, booked or not")
	}
}

func TestRenderDetails_IncludesAssessment(t *testing.T) {
	records := patient.SeedRecords()
	out := RenderDetails(records[0])
	for _, want := range []string{"Anna Hansen", "ASA: 1", "AI-vurdering", "Forklaringsfaktorer"} {
		if !strings.Contains(out, want) {
			t.Errorf("details missing %q", want)
		}
	}
}
