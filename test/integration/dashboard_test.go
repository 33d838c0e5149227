package integration

import (
	"context"
	"testing"

	"github.com/preop/preop/internal/console"
	"github.com/preop/preop/internal/domain/chat"
	"github.com/preop/preop/internal/domain/interview"
	"github.com/preop/preop/internal/domain/patient"
)

// TestClinicianWorkflow walks the clinician path end to end over the
// seeded store: search, open the day's schedule, inspect a patient.
func TestClinicianWorkflow(t *testing.T) {
	ctx := context.Background()
	repo, err := patient.NewSeededRepo()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := patient.NewService(repo)
	state := console.NewState(svc)

	t.Run("SearchByName", func(t *testing.T) {
		results := svc.SearchPatients(ctx, "hansen")
		if len(results) != 1 || results[0].FirstName != "Anna" {
			t.Fatalf("search for hansen returned %d results", len(results))
		}
	})

	t.Run("ScheduleForDefaultDay", func(t *testing.T) {
		scheduled := svc.GetScheduledPatients(ctx, patient.DefaultScheduleDate)
		if len(scheduled) != 3 {
			t.Fatalf("expected 3 scheduled patients, got %d", len(scheduled))
		}
		for i := 1; i < len(scheduled); i++ {
			if scheduled[i].ProcedureTime < scheduled[i-1].ProcedureTime {
				t.Fatal("schedule not ordered by time slot")
			}
		}
	})

	t.Run("OpenDetailsFromCalendar", func(t *testing.T) {
		if err := state.Navigate(console.ViewCalendar); err != nil {
			t.Fatalf("Navigate: %v", err)
		}
		scheduled := svc.GetScheduledPatients(ctx, patient.DefaultScheduleDate)
		if err := state.OpenSummary(ctx, scheduled[0].ID); err != nil {
			t.Fatalf("OpenSummary: %v", err)
		}
		if err := state.ViewDetailsFromSummary(); err != nil {
			t.Fatalf("ViewDetailsFromSummary: %v", err)
		}
		if state.View() != console.ViewDetails {
			t.Fatalf("view = %q, want details", state.View())
		}
		if out := console.RenderDetails(state.Selected()); out == "" {
			t.Fatal("empty details rendering")
		}
	})
}

// TestPatientWorkflow covers the patient-facing path: role switch into
// the chat, a question and its classified reply, and the structured
// interview.
func TestPatientWorkflow(t *testing.T) {
	ctx := context.Background()
	repo, err := patient.NewSeededRepo()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	state := console.NewState(patient.NewService(repo))

	t.Run("RoleSwitchOpensChat", func(t *testing.T) {
		if err := state.SwitchRole(console.RolePatient); err != nil {
			t.Fatalf("SwitchRole: %v", err)
		}
		if state.View() != console.ViewChatbot {
			t.Fatalf("view = %q, want chatbot", state.View())
		}
	})

	t.Run("ChatAnswersFastingQuestion", func(t *testing.T) {
		session := chat.NewSession()
		reply, err := session.SendMessage(ctx, "Can I eat before surgery?")
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		if reply.Text != chat.Responses[chat.CategoryFasting] {
			t.Fatal("reply is not the fasting guidance")
		}
		if len(session.Messages()) != 3 {
			t.Fatalf("expected greeting plus one exchange, got %d messages", len(session.Messages()))
		}
	})

	t.Run("InterviewRunsToSummary", func(t *testing.T) {
		flow := interview.NewFlow(nil)
		for {
			q, ok := flow.Current()
			if !ok {
				break
			}
			if err := flow.Answer("svar til " + q.ID); err != nil {
				t.Fatalf("Answer(%s): %v", q.ID, err)
			}
		}
		summary, ok := flow.Summary()
		if !ok {
			t.Fatal("expected a summary")
		}
		if len(summary.Answers) != len(interview.DefaultQuestions) {
			t.Fatalf("summary has %d answers, want %d", len(summary.Answers), len(interview.DefaultQuestions))
		}
	})
}
