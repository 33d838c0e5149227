// Package interview implements the structured pre-assessment interview:
// a fixed question list walked in order, collecting free-text answers
// into a summarizable transcript.
package interview

import (
	"errors"
	"time"
)

// Question is one scripted interview question. Required questions must
// receive a non-blank answer before the flow advances; optional ones may
// be skipped.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Required bool   `json:"required"`
}

// EventType tags a transcript entry.
type EventType string

const (
	EventSessionStarted  EventType = "session_started"
	EventQuestionShown   EventType = "question_shown"
	EventAnswerGiven     EventType = "answer_given"
	EventQuestionSkipped EventType = "question_skipped"
	EventSessionFinished EventType = "session_finished"
	EventSessionAborted  EventType = "session_aborted"
)

// Event is one append-only transcript entry.
type Event struct {
	Timestamp  time.Time `json:"ts"`
	Type       EventType `json:"type"`
	SessionID  string    `json:"sessionId"`
	QuestionID string    `json:"questionId,omitempty"`
	Text       string    `json:"text,omitempty"`
}

// Summary is the completed interview packaged for downstream review.
type Summary struct {
	SessionID string            `json:"sessionId"`
	CreatedAt time.Time         `json:"createdAt"`
	Questions []Question        `json:"questions"`
	Answers   map[string]string `json:"answers"`
}

var (
	// ErrAnswerRequired is returned when a required question receives a
	// blank answer or a skip.
	ErrAnswerRequired = errors.New("answer required")

	// ErrInterviewDone is returned when Answer or Skip is called after
	// the last question has been resolved.
	ErrInterviewDone = errors.New("interview already finished")
)
