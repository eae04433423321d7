package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zephyrtronium/calculator"
)

// ErrNotFound is returned for a session ID that doesn't exist.
var ErrNotFound = errors.New("session not found")

// Session is one calculator shared by the requests that name its ID.
type Session struct {
	ID      string
	Created time.Time

	mu   sync.Mutex
	calc *calculator.Calculator
}

// State is the JSON view of a session.
type State struct {
	ID         string   `json:"id"`
	Expression string   `json:"expression"`
	History    []string `json:"history"`
	Result     string   `json:"result,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// Press presses keys in order and returns the resulting state. Keys the
// expression can't take are dropped. The message in the state is from the
// last key.
func (s *Session) Press(keys []calculator.Key) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		s.calc.Press(k)
	}
	return s.state()
}

// State returns the current state of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() State {
	return State{
		ID:         s.ID,
		Expression: s.calc.Expression(),
		History:    s.calc.History(),
		Result:     s.calc.Result(),
		Message:    s.calc.Message(),
	}
}

// Store is a thread-safe in-memory registry of sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     []calculator.ContextOption
}

// NewStore creates an empty store. Every session it creates evaluates with
// opts.
func NewStore(opts ...calculator.ContextOption) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a new session.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		Created: time.Now(),
		calc:    calculator.New(s.opts...),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns a session by ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete ends a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// List returns every session, oldest first.
func (s *Store) List() []*Session {
	s.mu.RLock()
	r := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		r = append(r, sess)
	}
	s.mu.RUnlock()
	sort.Slice(r, func(i, j int) bool {
		if r[i].Created.Equal(r[j].Created) {
			return r[i].ID < r[j].ID
		}
		return r[i].Created.Before(r[j].Created)
	})
	return r
}
