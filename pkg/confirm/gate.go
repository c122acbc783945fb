// Package confirm implements the two-step confirmation that guards
// destructive actions. A Gate wraps exactly one callback and will only run it
// after it has been armed by a first user action.
package confirm

import (
	"context"
	"fmt"
	"sync"

	"github.com/pluqqy/schemadeck/pkg/models"
)

// GateState is the position of a gate in its Idle -> Armed -> Idle cycle
type GateState int

const (
	Idle GateState = iota
	Armed
)

func (s GateState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	}
	return fmt.Sprintf("GateState(%d)", int(s))
}

// Gate guards a single destructive callback
type Gate struct {
	mu        sync.Mutex
	state     GateState
	onConfirm func(context.Context) error
}

// NewGate returns an idle gate around onConfirm
func NewGate(onConfirm func(context.Context) error) *Gate {
	return &Gate{onConfirm: onConfirm}
}

// State returns the current gate state
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Armed reports whether the next Confirm will fire
func (g *Gate) Armed() bool {
	return g.State() == Armed
}

// Arm moves the gate to Armed. Arming an armed gate does nothing
func (g *Gate) Arm() {
	g.mu.Lock()
	g.state = Armed
	g.mu.Unlock()
}

// Cancel returns the gate to Idle without firing
func (g *Gate) Cancel() {
	g.mu.Lock()
	g.state = Idle
	g.mu.Unlock()
}

// Confirm fires the callback if the gate is armed. The gate is back to Idle
// before the callback runs, so a second Confirm racing this one gets
// ErrInvalidState instead of firing again.
func (g *Gate) Confirm(ctx context.Context) error {
	_, err := g.fire(ctx)
	return err
}

// Trigger is the single-button form: the first call arms, the next fires.
// fired reports whether the callback ran, even when it returned an error.
func (g *Gate) Trigger(ctx context.Context) (fired bool, err error) {
	g.mu.Lock()
	if g.state == Idle {
		g.state = Armed
		g.mu.Unlock()
		return false, nil
	}
	g.mu.Unlock()

	return g.fire(ctx)
}

func (g *Gate) fire(ctx context.Context) (bool, error) {
	g.mu.Lock()
	if g.state != Armed {
		g.mu.Unlock()
		return false, fmt.Errorf("confirm on idle gate: %w", models.ErrInvalidState)
	}
	g.state = Idle
	g.mu.Unlock()

	if g.onConfirm == nil {
		return true, nil
	}
	return true, g.onConfirm(ctx)
}
