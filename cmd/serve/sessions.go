package serve

import (
	"sync"

	"github.com/bgraf/exifview/viewer"
	"github.com/google/uuid"
)

const sessionCookie = "exifview_session"

// sessionMap hands out one viewer session per browser.
type sessionMap struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*viewer.Session
	factory func() *viewer.Session
}

func newSessionMap(factory func() *viewer.Session) *sessionMap {
	return &sessionMap{
		byID:    make(map[uuid.UUID]*viewer.Session),
		factory: factory,
	}
}

// Lookup returns the session with the given id or false if it is unknown.
func (m *sessionMap) Lookup(id uuid.UUID) (*viewer.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.byID[id]
	return session, ok
}

// Create starts a new session and returns it together with its id.
func (m *sessionMap) Create() (uuid.UUID, *viewer.Session, error) {
	guid, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, nil, err
	}

	session := m.factory()

	m.mu.Lock()
	m.byID[guid] = session
	m.mu.Unlock()

	return guid, session, nil
}
