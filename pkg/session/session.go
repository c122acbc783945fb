// Package session tracks the shared schema editor surface: which entry it is
// bound to, which tab is showing, and whether it is open. One State exists per
// process. The controller is its only writer; readers may call Current at any
// time.
package session

import (
	"context"
	"sync"

	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/models"
)

// Event is delivered to watchers after a transition has been committed
type Event struct {
	Session models.EditorSession
	Version uint64
}

type watcher struct {
	id int
	fn func(Event)
}

// State holds the editor session
type State struct {
	mu       sync.RWMutex
	cur      models.EditorSession
	version  uint64
	watchers []watcher
	nextID   int
	log      pslog.Logger
}

// New creates a closed session showing tab
func New(tab models.EditorTab) *State {
	return NewWithLogger(tab, nil)
}

// NewWithLogger creates a closed session that logs its transitions
func NewWithLogger(tab models.EditorTab, logger pslog.Logger) *State {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	if tab == "" {
		tab = models.TabDefault
	}
	return &State{
		cur: models.EditorSession{Tab: tab},
		log: logger,
	}
}

// Current returns the session as last committed
func (s *State) Current() models.EditorSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Watch registers fn to run after every committed transition
func (s *State) Watch(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.watchers = append(s.watchers, watcher{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w.id == id {
				s.watchers = append(s.watchers[:i:i], s.watchers[i+1:]...)
				return
			}
		}
	}
}

// Update applies fn to a copy of the session and commits the result as a
// single transition. A result that would be open without a key is rejected
// and the session is left as it was.
func (s *State) Update(fn func(*models.EditorSession)) error {
	s.mu.Lock()
	next := s.cur
	fn(&next)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	if next == s.cur {
		s.mu.Unlock()
		return nil
	}
	s.cur = next
	s.version++
	ev := Event{Session: next, Version: s.version}
	watchers := make([]watcher, len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	s.log.Debug("editor session changed", "key", next.EditingKey, "tab", next.Tab, "open", next.Open)
	for _, w := range watchers {
		w.fn(ev)
	}
	return nil
}

// SetEditingKey binds the session to key
func (s *State) SetEditingKey(key string) error {
	return s.Update(func(es *models.EditorSession) { es.EditingKey = key })
}

// SetTab switches the active tab
func (s *State) SetTab(tab models.EditorTab) error {
	return s.Update(func(es *models.EditorSession) { es.Tab = tab })
}

// SetOpen opens or closes the editor surface
func (s *State) SetOpen(open bool) error {
	return s.Update(func(es *models.EditorSession) { es.Open = open })
}
