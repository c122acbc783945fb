package confirm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/pkg/models"
)

func TestFirstTriggerNeverFires(t *testing.T) {
	ctx := context.Background()
	calls := 0
	g := NewGate(func(context.Context) error { calls++; return nil })

	fired, err := g.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, fired)
	assert.Zero(t, calls)
	assert.Equal(t, Armed, g.State())

	fired, err = g.Trigger(ctx)
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Idle, g.State())
}

func TestArmIsIdempotent(t *testing.T) {
	ctx := context.Background()
	calls := 0
	g := NewGate(func(context.Context) error { calls++; return nil })

	g.Arm()
	g.Arm()
	g.Arm()
	require.NoError(t, g.Confirm(ctx))
	assert.Equal(t, 1, calls)

	err := g.Confirm(ctx)
	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.Equal(t, 1, calls)
}

func TestConfirmOnIdleGate(t *testing.T) {
	ctx := context.Background()
	g := NewGate(func(context.Context) error { t.Fatal("callback must not run"); return nil })
	assert.ErrorIs(t, g.Confirm(ctx), models.ErrInvalidState)
}

func TestCancelDisarms(t *testing.T) {
	ctx := context.Background()
	calls := 0
	g := NewGate(func(context.Context) error { calls++; return nil })

	g.Arm()
	g.Cancel()
	assert.Equal(t, Idle, g.State())

	fired, err := g.Trigger(ctx)
	require.NoError(t, err)
	assert.False(t, fired, "trigger after cancel only re-arms")
	assert.Zero(t, calls)
}

func TestConcurrentConfirmFiresOnce(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	g := NewGate(func(context.Context) error { calls.Add(1); return nil })
	g.Arm()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Confirm(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestCallbackErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	g := NewGate(func(context.Context) error { return boom })
	g.Arm()

	fired, err := g.Trigger(ctx)
	assert.True(t, fired, "the callback ran even though it failed")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Idle, g.State())
}

func TestGateStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "armed", Armed.String())
}
