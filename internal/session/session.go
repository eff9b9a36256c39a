// Package session holds the per-dashboard conversation transcript: an
// append-only log of role-tagged turns seeded from the initial AI commentary.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/accucheck/accucheck-cli/internal/ai"
	"github.com/accucheck/accucheck-cli/internal/commentary"
)

// Role tags a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Persona is the fixed system instruction seeded into every transcript.
const Persona = "You are a business analyst helping interpret sales data."

// Turn is one transcript entry. Turns are never edited or removed once
// appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

var (
	// ErrNotActive is returned when a turn is submitted before seeding.
	ErrNotActive = errors.New("session has no transcript yet")
	// ErrActive is returned when seeding an already-active session.
	ErrActive = errors.New("session already seeded; reset first")
)

// Session owns one conversation. It moves from uninitialized to active when
// seeded and back on Reset. Callers serialize access; a session is owned by
// exactly one interactive dashboard.
type Session struct {
	id    string
	turns []Turn
	com   *commentary.Commentator
}

// New creates an uninitialized session driven by the given commentator.
func New(com *commentary.Commentator) *Session {
	return &Session{id: uuid.NewString(), com: com}
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// Active reports whether the transcript exists.
func (s *Session) Active() bool { return len(s.turns) > 0 }

// Len returns the transcript length.
func (s *Session) Len() int { return len(s.turns) }

// Seed initializes the transcript with the analyst persona and the initial
// commentary verbatim, failure sentinels included.
func (s *Session) Seed(commentaryText string) error {
	if s.Active() {
		return ErrActive
	}
	s.turns = append(s.turns,
		Turn{Role: RoleSystem, Content: Persona},
		Turn{Role: RoleAssistant, Content: commentaryText},
	)
	return nil
}

// Submit appends a user turn, asks the commentator for a reply using the
// entire transcript as context, appends the reply as an assistant turn, and
// returns it. Disabled-mode and provider-failure sentinels become assistant
// turns like any other reply; the transcript always grows by exactly two.
func (s *Session) Submit(ctx context.Context, text string) (string, error) {
	if !s.Active() {
		return "", ErrNotActive
	}
	s.turns = append(s.turns, Turn{Role: RoleUser, Content: text})
	reply := s.com.Continue(ctx, s.messages())
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// Reset discards the transcript and returns the session to uninitialized.
func (s *Session) Reset() {
	s.turns = nil
}

// Transcript returns a copy of the turns in append order.
func (s *Session) Transcript() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) messages() []ai.Message {
	msgs := make([]ai.Message, len(s.turns))
	for i, t := range s.turns {
		msgs[i] = ai.Message{Role: string(t.Role), Content: t.Content}
	}
	return msgs
}
