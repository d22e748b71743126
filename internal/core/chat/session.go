// Package chat holds the conversational session state machine: an append-only
// transcript, a composing draft, and the at-most-one-outstanding request rule.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender labels who produced a transcript message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// State is the session's composing/awaiting cycle.
type State int

const (
	// StateComposing: draft editable, no outstanding request.
	StateComposing State = iota
	// StateAwaiting: a request is in flight and the draft is locked.
	StateAwaiting
	// StateComposingWithError: the last request failed; the error is surfaced
	// and the draft is editable again.
	StateComposingWithError
)

// Greeting is the fixed first transcript message of every session.
const Greeting = "Hello! I'm your AI assistant. How can I help you today?"

// TransportFailureText is appended when a request could not complete at all.
// It is fixed so transport failures stay distinguishable from errors the
// answering service itself reported.
const TransportFailureText = "Failed to connect to the answering service. Please check your connection and try again."

// Message is one transcript entry. Transcripts are append-only; messages are
// never reordered or mutated after append.
type Message struct {
	ID        int64
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Request identifies one outbound question. Seq tags the eventual response so
// a reply arriving after Clear is dropped instead of appended to a transcript
// it no longer belongs to.
type Request struct {
	Seq      uint64
	Question string
}

// Session is the conversational state machine. It is owned by a single
// controller and never shared across goroutines; all methods are synchronous.
type Session struct {
	id         string
	transcript []Message
	draft      string
	state      State
	seq        uint64
	seeded     bool
	lastErr    string
	lastID     int64
}

// NewSession creates a session whose transcript holds the greeting.
func NewSession() *Session {
	s := &Session{id: uuid.NewString()}
	s.append(SenderAssistant, Greeting)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current machine state.
func (s *Session) State() State { return s.state }

// Awaiting reports whether a request is outstanding.
func (s *Session) Awaiting() bool { return s.state == StateAwaiting }

// Transcript returns the messages in insertion (chronological) order.
func (s *Session) Transcript() []Message { return s.transcript }

// Draft returns the in-progress message text.
func (s *Session) Draft() string { return s.draft }

// LastError returns the surfaced error for the current state, if any.
func (s *Session) LastError() string { return s.lastErr }

// SetDraft replaces the draft while it is editable. While a request is in
// flight the draft is locked and edits are dropped.
func (s *Session) SetDraft(text string) {
	if s.state == StateAwaiting {
		return
	}
	s.draft = text
}

// SeedDraft applies a hand-off reference to the draft. It is legal only in
// the composing state and is consumed at most once per session lifetime;
// later calls are no-ops. Returns whether the seed was applied.
func (s *Session) SeedDraft(text string) bool {
	if s.state != StateComposing || s.seeded || text == "" {
		return false
	}
	s.draft = text
	s.seeded = true
	return true
}

// Seeded reports whether a hand-off has already been consumed.
func (s *Session) Seeded() bool { return s.seeded }

// Send appends the draft as a user message, clears the draft, and moves to
// the awaiting state. It returns the request to issue. It is a no-op while a
// request is outstanding or when the draft is empty, enforcing the
// at-most-one-outstanding rule.
func (s *Session) Send() (Request, bool) {
	if s.state == StateAwaiting || s.trimmedDraft() == "" {
		return Request{}, false
	}

	question := s.trimmedDraft()
	s.append(SenderUser, question)
	s.draft = ""
	s.lastErr = ""
	s.state = StateAwaiting
	s.seq++
	return Request{Seq: s.seq, Question: question}, true
}

// Resolve appends the assistant's reply for the request tagged seq and
// returns to composing. A reply whose seq no longer matches (the session was
// cleared since it was issued) is dropped silently.
func (s *Session) Resolve(seq uint64, answer string) bool {
	if !s.accept(seq) {
		return false
	}
	s.append(SenderAssistant, answer)
	s.state = StateComposing
	return true
}

// FailTransport records a transport-level failure for the request tagged seq:
// the fixed connectivity message joins the transcript and the session moves
// to the composing-with-error state. Stale failures are dropped like stale
// replies.
func (s *Session) FailTransport(seq uint64) bool {
	if !s.accept(seq) {
		return false
	}
	s.append(SenderAssistant, TransportFailureText)
	s.lastErr = TransportFailureText
	s.state = StateComposingWithError
	return true
}

// Clear resets the transcript to the greeting and returns to composing. An
// outstanding request is not cancelled, but bumping seq means its eventual
// response no longer matches and is dropped rather than appended to the
// reset transcript.
func (s *Session) Clear() {
	s.transcript = nil
	s.append(SenderAssistant, Greeting)
	s.lastErr = ""
	s.state = StateComposing
	s.seq++
}

func (s *Session) accept(seq uint64) bool {
	return s.state == StateAwaiting && seq == s.seq
}

func (s *Session) trimmedDraft() string {
	return strings.TrimSpace(s.draft)
}

func (s *Session) append(sender Sender, text string) {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.transcript = append(s.transcript, Message{
		ID:        id,
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	})
}
