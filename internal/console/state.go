// Package console holds the view state and rendering for the terminal
// front end: which screen is active, which patient is selected, and the
// role the user is acting in.
package console

import (
	"context"
	"fmt"

	"github.com/preop/preop/internal/domain/patient"
)

// View names a screen.
type View string

const (
	ViewSearch   View = "search"
	ViewCalendar View = "calendar"
	ViewDetails  View = "details"
	ViewChatbot  View = "chatbot"
)

// Role distinguishes the clinician-facing and patient-facing surfaces.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// State tracks the active role, view, selected patient, and the summary
// overlay. Not safe for concurrent use; the console drives it from one
// goroutine.
type State struct {
	svc *patient.Service

	role        Role
	view        View
	selected    *patient.Record
	summary     *patient.Record
	summaryOpen bool
}

// NewState starts in doctor role on the search view, matching the
// clinician-first entry point.
func NewState(svc *patient.Service) *State {
	return &State{svc: svc, role: RoleDoctor, view: ViewSearch}
}

func (s *State) Role() Role { return s.role }
func (s *State) View() View { return s.view }

// Selected returns the patient shown on the details view, nil when none.
func (s *State) Selected() *patient.Record { return s.selected }

// SummaryPatient returns the patient in the summary overlay and whether
// the overlay is open.
func (s *State) SummaryPatient() (*patient.Record, bool) {
	return s.summary, s.summaryOpen
}

// SwitchRole changes the active role and resets to that role's home
// view. Selection and overlay are cleared; a patient must never see a
// clinician's leftover selection.
func (s *State) SwitchRole(role Role) error {
	switch role {
	case RoleDoctor:
		s.view = ViewSearch
	case RolePatient:
		s.view = ViewChatbot
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	s.role = role
	s.selected = nil
	s.summary = nil
	s.summaryOpen = false
	return nil
}

// Navigate switches the doctor between search and calendar. The details
// view is only reachable through SelectPatient, and the chatbot only
// through the patient role.
func (s *State) Navigate(view View) error {
	if s.role != RoleDoctor {
		return fmt.Errorf("navigation is a doctor-role action")
	}
	if view != ViewSearch && view != ViewCalendar {
		return fmt.Errorf("cannot navigate directly to view %q", view)
	}
	s.view = view
	s.selected = nil
	return nil
}

// SelectPatient loads the record and opens the details view. On a lookup
// failure the state is left exactly as it was.
func (s *State) SelectPatient(ctx context.Context, id string) error {
	if s.role != RoleDoctor {
		return fmt.Errorf("patient selection is a doctor-role action")
	}
	rec, err := s.svc.GetPatient(ctx, id)
	if err != nil {
		return err
	}
	s.selected = rec
	s.view = ViewDetails
	return nil
}

// BackToCalendar leaves the details view for the calendar and drops the
// selection.
func (s *State) BackToCalendar() {
	if s.role != RoleDoctor {
		return
	}
	s.selected = nil
	s.view = ViewCalendar
}

// OpenSummary shows the summary overlay for a patient without leaving
// the current view. On a lookup failure the overlay stays closed.
func (s *State) OpenSummary(ctx context.Context, id string) error {
	if s.role != RoleDoctor {
		return fmt.Errorf("summary overlay is a doctor-role action")
	}
	rec, err := s.svc.GetPatient(ctx, id)
	if err != nil {
		return err
	}
	s.summary = rec
	s.summaryOpen = true
	return nil
}

// CloseSummary dismisses the overlay.
func (s *State) CloseSummary() {
	s.summary = nil
	s.summaryOpen = false
}

// ViewDetailsFromSummary promotes the overlay patient to the full
// details view, closing the overlay.
func (s *State) ViewDetailsFromSummary() error {
	if !s.summaryOpen || s.summary == nil {
		return fmt.Errorf("no summary overlay open")
	}
	s.selected = s.summary
	s.view = ViewDetails
	s.CloseSummary()
	return nil
}
