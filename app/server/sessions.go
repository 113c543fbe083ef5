package server

import (
	"sync"

	"mecabot/app/service/session"
)

// sessionEntry pairs the conversation log with a turn lock so two requests
// for the same session never run the pipeline concurrently.
type sessionEntry struct {
	turnMu sync.Mutex
	sess   *session.Session
}

type sessionManager struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func newSessionManager() *sessionManager {
	return &sessionManager{
		entries: make(map[string]*sessionEntry),
	}
}

func (m *sessionManager) get(id string) *sessionEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		entry = &sessionEntry{sess: session.New()}
		m.entries[id] = entry
	}

	return entry
}
