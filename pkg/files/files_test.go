package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/pkg/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, InitProjectStructure(root))
	return NewRepository(root, nil)
}

func TestInitProjectStructure(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository(root, nil)
	assert.False(t, repo.Initialized())

	require.NoError(t, InitProjectStructure(root))
	assert.True(t, repo.Initialized())
	assert.DirExists(t, filepath.Join(root, ProjectDir, ItemsDir))
}

func TestReadMissingItemIsEmpty(t *testing.T) {
	repo := newTestRepository(t)

	schemas, err := repo.ReadItem("post-1")
	require.NoError(t, err)
	assert.True(t, schemas.IsEmpty())
	assert.False(t, repo.ItemExists("post-1"))
}

func TestWriteAndReadItem(t *testing.T) {
	repo := newTestRepository(t)
	schemas := models.NewCollection(
		models.SchemaEntry{
			Key: "s1", Type: "Article",
			Metadata:   models.Metadata{Title: "Launch", IsPrimary: true},
			Properties: map[string]any{"headline": "We launched"},
		},
		models.SchemaEntry{Key: "s2", Type: "Product"},
	)

	require.NoError(t, repo.WriteItem("post-1", schemas))
	assert.True(t, repo.ItemExists("post-1"))

	got, err := repo.ReadItem("post-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, got.Keys())
	s1, _ := got.Get("s1")
	assert.Equal(t, "Launch", s1.Metadata.Title)
	assert.True(t, s1.Metadata.IsPrimary)
	assert.Equal(t, "We launched", s1.Properties["headline"])

	raw, err := os.ReadFile(repo.ItemPath("post-1"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "item: post-1")

	entries, err := os.ReadDir(filepath.Dir(repo.ItemPath("post-1")))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestListItems(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.WriteItem("zeta", models.Collection{}))
	require.NoError(t, repo.WriteItem("alpha", models.Collection{}))
	require.NoError(t, os.WriteFile(filepath.Join(repo.ProjectPath(), ItemsDir, "notes.txt"), []byte("x"), 0644))

	items, err := repo.ListItems()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, items)

	empty := NewRepository(t.TempDir(), nil)
	items, err = empty.ListItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddEntry(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.AddEntry("post-1", models.SchemaEntry{Type: "Article", Metadata: models.Metadata{IsPrimary: true}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Key, "schema-"))

	second, err := repo.AddEntry("post-1", models.SchemaEntry{Type: "Product", Metadata: models.Metadata{IsPrimary: true}})
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)

	got, err := repo.ReadItem("post-1")
	require.NoError(t, err)
	assert.Equal(t, []string{first.Key, second.Key}, got.Keys())
	primary, ok := got.Primary()
	require.True(t, ok)
	assert.Equal(t, first.Key, primary.Key, "appending never moves the primary")
	assert.False(t, second.Metadata.IsPrimary)
	assert.Equal(t, 1, got.PrimaryCount())

	_, err = repo.AddEntry("post-1", models.SchemaEntry{Key: first.Key, Type: "Event"})
	assert.Error(t, err)
}

func TestRepositoryAsPersister(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	schemas := models.NewCollection(models.SchemaEntry{Key: "a", Type: "Article"})

	require.NoError(t, repo.SaveCollection(ctx, "post-1", schemas))
	got, err := repo.LoadCollection(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Keys())
}

func TestInvalidItemNames(t *testing.T) {
	repo := newTestRepository(t)
	for _, name := range []string{"", "../escape", "Has Spaces", "UPPER", "-lead"} {
		_, err := repo.ReadItem(name)
		assert.Error(t, err, "ReadItem(%q)", name)
		assert.Error(t, repo.WriteItem(name, models.Collection{}), "WriteItem(%q)", name)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"User's Profile!", "users-profile"},
		{"Post #42", "post-42"},
		{"  --  ", "unnamed"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			if got != "unnamed" {
				assert.NoError(t, ValidateItemName(got))
			}
		})
	}
}
