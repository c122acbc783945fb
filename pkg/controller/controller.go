// Package controller is the single writer for the schema store and the editor
// session. The presentation layer reads snapshots through it, dispatches user
// actions to it, and re-renders when its change channel fires.
package controller

import (
	"context"
	"fmt"
	"sync"

	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/confirm"
	"github.com/pluqqy/schemadeck/pkg/eventbus"
	"github.com/pluqqy/schemadeck/pkg/models"
	"github.com/pluqqy/schemadeck/pkg/session"
	"github.com/pluqqy/schemadeck/pkg/store"
)

// Persister loads and saves the collection of a content item. The host
// supplies it; the controller only calls it around its own transitions.
type Persister interface {
	LoadCollection(ctx context.Context, item string) (models.Collection, error)
	SaveCollection(ctx context.Context, item string, schemas models.Collection) error
}

// Options configures a Controller
type Options struct {
	Persister Persister
	Logger    pslog.Logger
}

// DeleteOutcome reports what a delete request did
type DeleteOutcome int

const (
	// DeleteArmed means the request armed the entry's gate and nothing was removed.
	DeleteArmed DeleteOutcome = iota
	// DeleteRemoved means the gate fired and the entry is gone, even if
	// persisting the removal then failed.
	DeleteRemoved
)

func (o DeleteOutcome) String() string {
	if o == DeleteRemoved {
		return "removed"
	}
	return "armed"
}

// Controller orchestrates reads and writes against the store and session
type Controller struct {
	store     *store.Store
	session   *session.State
	gates     *confirm.Registry
	bus       *eventbus.Bus
	persister Persister
	log       pslog.Logger

	closeOnce sync.Once
	unwatch   []func()
}

// New wires a controller to the process-wide store and session
func New(st *store.Store, sess *session.State, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	c := &Controller{
		store:     st,
		session:   sess,
		gates:     confirm.NewRegistry(),
		bus:       eventbus.New(logger),
		persister: opts.Persister,
		log:       logger.With("item", st.Item()),
	}
	c.unwatch = append(c.unwatch,
		st.Watch(c.onStoreEvent),
		sess.Watch(c.onSessionEvent),
	)
	return c
}

// Close detaches the controller from the store and session
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		for _, fn := range c.unwatch {
			fn()
		}
	})
}

func (c *Controller) onStoreEvent(ev store.Event) {
	if ev.Kind == store.KindReplaced {
		c.gates.Sync(c.store.Schemas().Keys())
	}
	c.bus.Publish(eventbus.Event{Type: eventbus.EventCollection, Key: ev.Key, Version: ev.Version})
}

func (c *Controller) onSessionEvent(ev session.Event) {
	c.bus.Publish(eventbus.Event{Type: eventbus.EventSession, Key: ev.Session.EditingKey, Version: ev.Version})
}

// Subscribe returns a channel that receives an event after every change.
// Receivers should re-read state rather than inspect the event.
func (c *Controller) Subscribe() (<-chan eventbus.Event, func()) {
	return c.bus.Subscribe()
}

// Item returns the content item being managed
func (c *Controller) Item() string {
	return c.store.Item()
}

// ListEntries returns the current collection. An empty result means the
// presentation layer renders nothing at all.
func (c *Controller) ListEntries() models.Collection {
	return c.store.Schemas()
}

// Snapshot returns collection and entitlement read together
func (c *Controller) Snapshot() store.Snapshot {
	return c.store.Snapshot()
}

// IsGated reports whether primary selection is hidden for lack of entitlement
func (c *Controller) IsGated() bool {
	return c.store.Snapshot().Gated()
}

// Session returns the editor session
func (c *Controller) Session() models.EditorSession {
	return c.session.Current()
}

// SetPrimary makes key the only primary entry of schemas and stores the
// result in one transition.
func (c *Controller) SetPrimary(ctx context.Context, key string, schemas models.Collection) error {
	if c.IsGated() {
		return fmt.Errorf("set primary %q: primary selection requires entitlement: %w", key, models.ErrInvalidState)
	}
	if err := c.store.UpdatePrimary(key, schemas); err != nil {
		return err
	}
	c.log.Info("primary schema set", "key", key)
	return c.persist(ctx, "set primary")
}

// SelectForEdit binds the editor to key and opens it on the current tab
func (c *Controller) SelectForEdit(key string) error {
	err := c.session.Update(func(es *models.EditorSession) {
		es.EditingKey = key
		es.Open = true
	})
	if err != nil {
		return fmt.Errorf("select %q for edit: %w", key, err)
	}
	return nil
}

// SelectForPreview binds the editor to key on the code validation tab and
// opens it. Key and tab land in the same transition as the open flag.
func (c *Controller) SelectForPreview(key string) error {
	err := c.session.Update(func(es *models.EditorSession) {
		es.EditingKey = key
		es.Tab = models.TabCodeValidation
		es.Open = true
	})
	if err != nil {
		return fmt.Errorf("select %q for preview: %w", key, err)
	}
	return nil
}

// SwitchTab changes the editor tab while the editor is open
func (c *Controller) SwitchTab(tab models.EditorTab) error {
	return c.session.SetTab(tab)
}

// CloseEditor records that the editor surface was dismissed. The last
// binding is kept so reopening on the same tab is possible.
func (c *Controller) CloseEditor() error {
	return c.session.SetOpen(false)
}

// RequestDelete routes a delete action through key's confirmation gate. The
// first request only arms the gate; a request while armed removes the entry.
func (c *Controller) RequestDelete(ctx context.Context, key string) (DeleteOutcome, error) {
	if !c.store.Schemas().Has(key) {
		return DeleteArmed, fmt.Errorf("request delete %q: %w", key, models.ErrNotFound)
	}
	g := c.gates.For(key, c.trashFunc(key))
	fired, err := g.Trigger(ctx)
	if fired {
		return DeleteRemoved, err
	}
	if err != nil {
		return DeleteArmed, err
	}
	c.log.Debug("delete armed", "key", key)
	c.bus.Publish(eventbus.Event{Type: eventbus.EventGate, Key: key})
	return DeleteArmed, nil
}

// ConfirmDelete fires key's gate. It fails with ErrInvalidState unless a
// previous RequestDelete armed it.
func (c *Controller) ConfirmDelete(ctx context.Context, key string) error {
	if !c.store.Schemas().Has(key) {
		return fmt.Errorf("confirm delete %q: %w", key, models.ErrNotFound)
	}
	g, ok := c.gates.Lookup(key)
	if !ok {
		return fmt.Errorf("confirm delete %q: not armed: %w", key, models.ErrInvalidState)
	}
	return g.Confirm(ctx)
}

// CancelDelete disarms key's gate
func (c *Controller) CancelDelete(key string) {
	g, ok := c.gates.Lookup(key)
	if !ok || !g.Armed() {
		return
	}
	g.Cancel()
	c.log.Debug("delete cancelled", "key", key)
	c.bus.Publish(eventbus.Event{Type: eventbus.EventGate, Key: key})
}

// DeleteArmed reports whether key is waiting for delete confirmation
func (c *Controller) DeleteArmed(key string) bool {
	return c.gates.Armed(key)
}

// Reload replaces the store contents with what the persister holds
func (c *Controller) Reload(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}
	schemas, err := c.persister.LoadCollection(ctx, c.store.Item())
	if err != nil {
		return fmt.Errorf("reload %s: %w", c.store.Item(), err)
	}
	c.store.Replace(schemas)
	return nil
}

func (c *Controller) trashFunc(key string) func(context.Context) error {
	return func(ctx context.Context) error {
		removed, err := c.store.Delete(key)
		c.gates.Forget(key)
		if err != nil {
			return err
		}
		c.log.Info("schema deleted", "key", key, "type", removed.Type, "was_primary", removed.Metadata.IsPrimary)
		return c.persist(ctx, "delete")
	}
}

func (c *Controller) persist(ctx context.Context, op string) error {
	if c.persister == nil {
		return nil
	}
	if err := c.persister.SaveCollection(ctx, c.store.Item(), c.store.Schemas()); err != nil {
		c.log.Error("persist failed", "op", op, "err", err)
		return fmt.Errorf("%s: save %s: %w", op, c.store.Item(), err)
	}
	return nil
}
