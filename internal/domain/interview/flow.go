package interview

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Flow walks a question list in order and records every step in an
// append-only transcript. Safe for concurrent use.
type Flow struct {
	mu        sync.Mutex
	sessionID string
	questions []Question
	answers   map[string]string
	pos       int
	events    []Event
	finished  bool
	aborted   bool
	now       func() time.Time
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithFlowClock overrides the timestamp source. Used by tests.
func WithFlowClock(now func() time.Time) FlowOption {
	return func(f *Flow) { f.now = now }
}

// NewFlow starts an interview over the given questions. Passing nil uses
// DefaultQuestions.
func NewFlow(questions []Question, opts ...FlowOption) *Flow {
	if questions == nil {
		questions = DefaultQuestions
	}
	f := &Flow{
		sessionID: uuid.NewString(),
		questions: questions,
		answers:   make(map[string]string, len(questions)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.record(EventSessionStarted, "", "")
	if len(f.questions) > 0 {
		f.record(EventQuestionShown, f.questions[0].ID, f.questions[0].Text)
	} else {
		f.finish()
	}
	return f
}

// SessionID returns the unique id of this interview session.
func (f *Flow) SessionID() string {
	return f.sessionID
}

// Current returns the question awaiting an answer. ok is false once the
// interview has finished or been aborted.
func (f *Flow) Current() (Question, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done() {
		return Question{}, false
	}
	return f.questions[f.pos], true
}

// Answer records an answer for the current question and advances to the
// next one. A blank answer to a required question is rejected and the
// flow stays on the same question.
func (f *Flow) Answer(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done() {
		return ErrInterviewDone
	}

	q := f.questions[f.pos]
	trimmed := strings.TrimSpace(text)
	if trimmed == "" && q.Required {
		return ErrAnswerRequired
	}

	f.answers[q.ID] = trimmed
	f.record(EventAnswerGiven, q.ID, trimmed)
	f.advance()
	return nil
}

// Skip moves past the current question without an answer. Required
// questions cannot be skipped.
func (f *Flow) Skip() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done() {
		return ErrInterviewDone
	}

	q := f.questions[f.pos]
	if q.Required {
		return ErrAnswerRequired
	}

	f.record(EventQuestionSkipped, q.ID, "")
	f.advance()
	return nil
}

// Abort ends the interview early. Already-given answers are kept in the
// transcript. Aborting a finished interview is a no-op.
func (f *Flow) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done() {
		return
	}
	f.aborted = true
	f.record(EventSessionAborted, "", "")
}

// Done reports whether the interview has finished or been aborted.
func (f *Flow) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done()
}

// Transcript returns a copy of the event log in append order.
func (f *Flow) Transcript() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

// Summary packages the collected answers. ok is false until the
// interview has run to completion; aborted interviews never produce a
// summary.
func (f *Flow) Summary() (Summary, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finished {
		return Summary{}, false
	}
	answers := make(map[string]string, len(f.answers))
	for k, v := range f.answers {
		answers[k] = v
	}
	return Summary{
		SessionID: f.sessionID,
		CreatedAt: f.now(),
		Questions: f.questions,
		Answers:   answers,
	}, true
}

// -- internals, caller holds the lock --

func (f *Flow) done() bool {
	return f.finished || f.aborted
}

func (f *Flow) advance() {
	f.pos++
	if f.pos >= len(f.questions) {
		f.finish()
		return
	}
	q := f.questions[f.pos]
	f.record(EventQuestionShown, q.ID, q.Text)
}

func (f *Flow) finish() {
	f.finished = true
	f.record(EventSessionFinished, "", "")
}

func (f *Flow) record(t EventType, questionID, text string) {
	f.events = append(f.events, Event{
		Timestamp:  f.now(),
		Type:       t,
		SessionID:  f.sessionID,
		QuestionID: questionID,
		Text:       text,
	})
}
