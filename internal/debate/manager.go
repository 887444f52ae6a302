package debate

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the process-wide registry of active debates. It is constructed
// once in main and passed explicitly to the transport and moderator layers.
// Its own mutex covers id allocation and registration together, so concurrent
// creations never collide on an id.
type Manager struct {
	mu      sync.RWMutex
	debates map[string]*Debate

	limits    Limits
	oracle    ProfanityOracle
	publisher Publisher
}

// NewManager creates an empty registry. New debates inherit the given limits,
// profanity oracle and publisher.
func NewManager(limits Limits, oracle ProfanityOracle, publisher Publisher) *Manager {
	return &Manager{
		debates:   make(map[string]*Debate),
		limits:    limits,
		oracle:    oracle,
		publisher: publisher,
	}
}

// Create registers a new empty debate and returns it.
func (m *Manager) Create(title, description string) *Debate {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	d := newDebate(id, title, description, m.limits, m.oracle, m.publisher)
	m.debates[id] = d
	return d
}

// Get looks up an active debate. A debate that was torn down reports
// ErrNotFound exactly like one that never existed.
func (m *Manager) Get(id string) (*Debate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.debates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Remove unregisters a debate and everything it owns. Removing an absent id
// is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.debates, id)
}

// List returns the details of every active debate.
func (m *Manager) List() []Details {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Details, 0, len(m.debates))
	for _, d := range m.debates {
		out = append(out, d.Details())
	}
	return out
}

// Count returns the number of active debates.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.debates)
}
