package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the transcript of one chat conversation. A session opens
// with the greeting already present and grows by one user/assistant pair
// per accepted message. Safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	messages   []Message
	seq        int
	replyDelay time.Duration
	now        func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithReplyDelay sets a cosmetic pause before the assistant reply is
// appended. Zero means reply immediately.
func WithReplyDelay(d time.Duration) Option {
	return func(s *Session) { s.replyDelay = d }
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts a conversation with the greeting as the first message.
func NewSession(opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.append(Greeting, SenderAssistant)
	return s
}

// append assigns the next sequence number and records the message.
// Caller holds the lock, except during construction.
func (s *Session) append(text string, sender Sender) Message {
	s.seq++
	msg := Message{
		ID:        uuid.NewString(),
		Seq:       s.seq,
		Text:      text,
		Sender:    sender,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// SendMessage records the user's message and the classified assistant
// reply. Blank input is ignored and the transcript is left untouched.
// The returned message is the assistant reply, or the zero Message when
// the input was blank.
func (s *Session) SendMessage(ctx context.Context, text string) (Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, nil
	}

	s.mu.Lock()
	s.append(trimmed, SenderUser)
	reply := Respond(trimmed)
	s.mu.Unlock()

	if s.replyDelay > 0 {
		select {
		case <-time.After(s.replyDelay):
		case <-ctx.Done():
			return Message{}, ctx.Err()
		}
	}

	s.mu.Lock()
	msg := s.append(reply, SenderAssistant)
	s.mu.Unlock()
	return msg, nil
}

// Messages returns a copy of the transcript in sequence order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
