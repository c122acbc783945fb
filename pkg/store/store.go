// Package store holds the schema collection for the content item being
// edited. A process creates one Store and hands it to the controller, which is
// the only code allowed to call the mutating methods. Anything may read.
package store

import (
	"context"
	"fmt"
	"sync"

	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/models"
)

// EventKind names the transition that produced an Event
type EventKind string

const (
	KindReplaced    EventKind = "replaced"
	KindDeleted     EventKind = "deleted"
	KindPrimary     EventKind = "primary"
	KindEntitlement EventKind = "entitlement"
)

// Event is delivered to watchers after a transition has been committed
type Event struct {
	Kind    EventKind
	Key     string
	Version uint64
}

// Snapshot is a consistent read of the store
type Snapshot struct {
	Item     string
	Schemas  models.Collection
	Entitled bool
	Version  uint64
}

// Gated reports whether primary selection is restricted for this snapshot
func (s Snapshot) Gated() bool {
	return IsGated(s.Entitled, s.Schemas.Len())
}

// IsGated derives the gating flag: no entitlement and at least one entry
func IsGated(entitled bool, count int) bool {
	return !entitled && count >= 1
}

type watcher struct {
	id int
	fn func(Event)
}

// Store is the process-wide schema state for one content item
type Store struct {
	mu       sync.RWMutex
	item     string
	schemas  models.Collection
	entitled bool
	version  uint64
	watchers []watcher
	nextID   int
	log      pslog.Logger
}

// New creates a store for item seeded with schemas
func New(item string, schemas models.Collection, entitled bool) *Store {
	return NewWithLogger(item, schemas, entitled, nil)
}

// NewWithLogger creates a store that logs its transitions
func NewWithLogger(item string, schemas models.Collection, entitled bool, logger pslog.Logger) *Store {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Store{
		item:     item,
		schemas:  schemas,
		entitled: entitled,
		log:      logger.With("item", item),
	}
}

// Item returns the content item this store belongs to
func (s *Store) Item() string {
	return s.item
}

// Schemas returns the current collection
func (s *Store) Schemas() models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schemas
}

// IsEntitled reports whether multi-schema primary selection is unlocked
func (s *Store) IsEntitled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entitled
}

// Snapshot returns the collection, entitlement and version read together
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Item:     s.item,
		Schemas:  s.schemas,
		Entitled: s.entitled,
		Version:  s.version,
	}
}

// Watch registers fn to be called after every committed transition.
// Watchers run synchronously on the mutating goroutine, outside the lock.
func (s *Store) Watch(fn func(Event)) (cancel func()) {
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

// Delete removes key from the collection and returns the removed entry.
// Removing the primary entry leaves the collection without a primary.
func (s *Store) Delete(key string) (models.SchemaEntry, error) {
	var removed models.SchemaEntry
	err := s.commit(KindDeleted, key, func(cur models.Collection) (models.Collection, error) {
		entry, ok := cur.Get(key)
		if !ok {
			return cur, fmt.Errorf("delete %q: %w", key, models.ErrNotFound)
		}
		next, _ := cur.Without(key)
		removed = entry
		return next, nil
	})
	if err != nil {
		return models.SchemaEntry{}, err
	}
	s.log.Debug("schema deleted", "key", key, "was_primary", removed.Metadata.IsPrimary)
	return removed, nil
}

// UpdatePrimary replaces the stored collection with schemas where key is the
// only primary entry. The clear and set passes are built before the swap, so
// watchers never see zero or several primaries.
func (s *Store) UpdatePrimary(key string, schemas models.Collection) error {
	next, ok := schemas.WithPrimary(key)
	if !ok {
		return fmt.Errorf("set primary %q: %w", key, models.ErrNotFound)
	}
	err := s.commit(KindPrimary, key, func(models.Collection) (models.Collection, error) {
		return next, nil
	})
	if err != nil {
		return err
	}
	s.log.Debug("schema primary set", "key", key)
	return nil
}

// Replace swaps in a collection loaded from persistence
func (s *Store) Replace(schemas models.Collection) {
	_ = s.commit(KindReplaced, "", func(models.Collection) (models.Collection, error) {
		return schemas, nil
	})
	s.log.Debug("schemas replaced", "count", schemas.Len())
}

// SetEntitled updates the entitlement flag
func (s *Store) SetEntitled(entitled bool) {
	s.mu.Lock()
	if s.entitled == entitled {
		s.mu.Unlock()
		return
	}
	s.entitled = entitled
	s.version++
	ev := Event{Kind: KindEntitlement, Version: s.version}
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	s.log.Debug("entitlement changed", "entitled", entitled)
	notify(watchers, ev)
}

func (s *Store) commit(kind EventKind, key string, apply func(models.Collection) (models.Collection, error)) error {
	s.mu.Lock()
	next, err := apply(s.schemas)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.schemas = next
	s.version++
	ev := Event{Kind: kind, Key: key, Version: s.version}
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	notify(watchers, ev)
	return nil
}

func (s *Store) snapshotWatchers() []watcher {
	out := make([]watcher, len(s.watchers))
	copy(out, s.watchers)
	return out
}

func notify(watchers []watcher, ev Event) {
	for _, w := range watchers {
		w.fn(ev)
	}
}
