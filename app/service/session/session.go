// Package session owns one user's conversation log: an append-only turn
// sequence with an explicit reset. Past turns are never edited or removed.
package session

import "sync"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const (
	// SeedGreeting opens every fresh session.
	SeedGreeting = "¡Hola! Soy tu Asistente Técnico. ¿Buscas algún componente o necesitas asesoría?"
	// ResetGreeting replaces the log after a memory wipe.
	ResetGreeting = "Memoria reiniciada. ¿En qué proyecto te puedo ayudar hoy?"
)

type Session struct {
	mu    sync.RWMutex
	turns []Turn
}

func New() *Session {
	return &Session{
		turns: []Turn{{Role: RoleAssistant, Content: SeedGreeting}},
	}
}

func (s *Session) Append(role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// Reset drops the log and seeds it with a single assistant turn.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = []Turn{{Role: RoleAssistant, Content: ResetGreeting}}
}

// Turns returns a snapshot copy of the full log.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)

	return out
}

// Recent returns a snapshot of the last n turns.
func (s *Session) Recent(n int) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.turns) {
		n = len(s.turns)
	}

	out := make([]Turn, n)
	copy(out, s.turns[len(s.turns)-n:])

	return out
}

// LastUserTurn scans backward for the most recent user turn whose content
// differs from current. Used to recover the prior topic when rewriting.
func LastUserTurn(turns []Turn, current string) (string, bool) {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser && turns[i].Content != current {
			return turns[i].Content, true
		}
	}

	return "", false
}
