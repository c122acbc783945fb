package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/pkg/models"
)

func sampleSchemas() models.Collection {
	return models.NewCollection(
		models.SchemaEntry{Key: "a", Type: "Article", Metadata: models.Metadata{IsPrimary: true}},
		models.SchemaEntry{Key: "b", Type: "Product"},
		models.SchemaEntry{Key: "c", Type: "FAQPage", Metadata: models.Metadata{Title: "FAQ"}},
	)
}

func TestSnapshotGating(t *testing.T) {
	tests := []struct {
		name     string
		entitled bool
		schemas  models.Collection
		want     bool
	}{
		{"empty not entitled", false, models.Collection{}, false},
		{"one entry not entitled", false, models.NewCollection(models.SchemaEntry{Key: "a", Type: "Article"}), true},
		{"many entries not entitled", false, sampleSchemas(), true},
		{"many entries entitled", true, sampleSchemas(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("post-1", tt.schemas, tt.entitled)
			assert.Equal(t, tt.want, s.Snapshot().Gated())
		})
	}
}

func TestDelete(t *testing.T) {
	s := New("post-1", sampleSchemas(), true)

	removed, err := s.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, "Article", removed.Type)
	assert.Equal(t, []string{"b", "c"}, s.Schemas().Keys())
	assert.Equal(t, 0, s.Schemas().PrimaryCount(), "deleting the primary must not promote another entry")

	_, err = s.Delete("a")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdatePrimary(t *testing.T) {
	s := New("post-1", sampleSchemas(), true)

	require.NoError(t, s.UpdatePrimary("c", s.Schemas()))
	primary, ok := s.Schemas().Primary()
	require.True(t, ok)
	assert.Equal(t, "c", primary.Key)
	assert.Equal(t, 1, s.Schemas().PrimaryCount())

	err := s.UpdatePrimary("zzz", s.Schemas())
	assert.ErrorIs(t, err, models.ErrNotFound)
	primary, _ = s.Schemas().Primary()
	assert.Equal(t, "c", primary.Key, "failed update must leave state untouched")
}

func TestWatchersSeeOneTransitionPerPrimaryUpdate(t *testing.T) {
	s := New("post-1", sampleSchemas(), true)

	var events []Event
	var primaryCounts []int
	cancel := s.Watch(func(ev Event) {
		events = append(events, ev)
		primaryCounts = append(primaryCounts, s.Schemas().PrimaryCount())
	})
	defer cancel()

	require.NoError(t, s.UpdatePrimary("b", s.Schemas()))
	require.NoError(t, s.UpdatePrimary("c", s.Schemas()))

	require.Len(t, events, 2)
	assert.Equal(t, KindPrimary, events[0].Kind)
	assert.Equal(t, "b", events[0].Key)
	assert.Less(t, events[0].Version, events[1].Version)
	assert.Equal(t, []int{1, 1}, primaryCounts)
}

func TestWatchCancel(t *testing.T) {
	s := New("post-1", sampleSchemas(), true)

	calls := 0
	cancel := s.Watch(func(Event) { calls++ })
	_, err := s.Delete("b")
	require.NoError(t, err)
	cancel()
	_, err = s.Delete("c")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestFailedDeleteDoesNotNotify(t *testing.T) {
	s := New("post-1", sampleSchemas(), true)
	calls := 0
	s.Watch(func(Event) { calls++ })

	_, err := s.Delete("missing")
	assert.Error(t, err)
	assert.Zero(t, calls)
	assert.Zero(t, s.Snapshot().Version)
}

func TestSetEntitled(t *testing.T) {
	s := New("post-1", sampleSchemas(), false)
	var kinds []EventKind
	s.Watch(func(ev Event) { kinds = append(kinds, ev.Kind) })

	s.SetEntitled(true)
	s.SetEntitled(true)

	assert.True(t, s.IsEntitled())
	assert.Equal(t, []EventKind{KindEntitlement}, kinds)
}

func TestReplace(t *testing.T) {
	s := New("post-1", models.Collection{}, true)
	s.Replace(sampleSchemas())

	assert.Equal(t, 3, s.Schemas().Len())
	assert.Equal(t, "post-1", s.Snapshot().Item)
}
