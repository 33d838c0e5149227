// Package chat implements the patient-facing anesthesia FAQ assistant: a
// keyword intent classifier over a fixed set of response categories, the
// pre-authored response table, and an append-only chat session.
package chat

import "time"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a chat transcript. Messages are never mutated
// after creation. Seq is the append-order sequence number; rendering orders
// by Seq, never by ID, so id generation quirks cannot reorder a transcript.
type Message struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Category is one of the fixed response categories the classifier maps
// free text onto.
type Category string

const (
	CategoryPreparation Category = "preparation"
	CategoryRisks       Category = "risks"
	CategoryRecovery    Category = "recovery"
	CategoryFasting     Category = "fasting"
	CategorySideEffects Category = "side-effects"
	CategoryPain        Category = "pain"
	CategoryDefault     Category = "default"
)

// Categories lists every category in classifier priority order, Default last.
var Categories = []Category{
	CategoryPreparation,
	CategoryRisks,
	CategoryRecovery,
	CategoryFasting,
	CategorySideEffects,
	CategoryPain,
	CategoryDefault,
}
