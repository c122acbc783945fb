package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/files"
	"github.com/pluqqy/schemadeck/pkg/models"
	th "github.com/pluqqy/schemadeck/pkg/tui/testhelpers"
	"github.com/pluqqy/schemadeck/pkg/view"
)

type result struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Cleanup(func() {
		cli.SetIO(nil, nil, nil)
		cli.SetGlobalFlags(false, false, false)
	})

	root := NewRootCommand("test")
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func setupProject(t *testing.T) *th.TestEnvironment {
	t.Helper()
	env := th.NewTestEnvironment(t).ChangeToRoot()
	env.WriteItem("post", th.ThreeSchemas())
	return env
}

func TestCommandsRequireProject(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, args := range [][]string{
		{"list"},
		{"show", "post", "s1"},
		{"primary", "post", "s1"},
		{"delete", "post", "s1"},
		{"add", "post", "Article"},
		{"export", "post"},
		{"copy", "post"},
		{"edit", "post"},
	} {
		res := run(t, "", args...)
		require.Error(t, res.err, args)
		assert.Contains(t, res.err.Error(), "Run 'schemadeck init' first", args)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	setupProject(t)
	res := run(t, "", "list", "-o", "xml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid output format")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	res := run(t, "", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Created .schemadeck folder structure")
	assert.FileExists(t, filepath.Join(dir, files.ProjectDir, files.ConfigFile))
	assert.DirExists(t, filepath.Join(dir, files.ProjectDir, files.ItemsDir))

	res = run(t, "", "init", "--examples")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Installed item example-blog-post")
	assert.Contains(t, res.out, "Installed item example-product")

	res = run(t, "", "init", "--examples")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "Skipped example-blog-post")

	repo := files.NewRepository(dir, nil)
	items, err := repo.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestListItems(t *testing.T) {
	env := setupProject(t)
	env.WriteItem("about", models.Collection{})

	res := run(t, "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "ITEM")
	assert.Contains(t, res.out, "post")
	assert.Contains(t, res.out, "about")

	res = run(t, "", "list", "-o", "json")
	require.NoError(t, res.err)
	var items []ItemSummary
	require.NoError(t, json.Unmarshal([]byte(res.out), &items))
	assert.Equal(t, []ItemSummary{
		{Name: "about", Schemas: 0},
		{Name: "post", Schemas: 3, Primary: "s1"},
	}, items)
}

func TestListSchemas(t *testing.T) {
	setupProject(t)

	res := run(t, "", "list", "post")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Launch post")
	assert.Contains(t, res.out, "FAQPage")
	assert.Contains(t, res.out, view.ProNotice)

	res = run(t, "", "list", "post", "-o", "json")
	require.NoError(t, res.err)
	var listing ItemListing
	require.NoError(t, json.Unmarshal([]byte(res.out), &listing))
	assert.True(t, listing.Gated)
	assert.Equal(t, view.ProNotice, listing.ProNotice)
	require.Len(t, listing.Schemas, 3)
	assert.Equal(t, SchemaRow{Key: "s2", Type: "Product", Title: "Product"}, listing.Schemas[1])

	t.Setenv("SCHEMADECK_PRO", "true")
	res = run(t, "", "list", "post", "-o", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "gated: false")
	assert.NotContains(t, res.out, "notice:")
}

func TestShow(t *testing.T) {
	setupProject(t)

	res := run(t, "", "show", "post", "s1")
	require.NoError(t, res.err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.out), &doc))
	assert.Equal(t, "Article", doc["@type"])
	assert.Equal(t, "We launched", doc["headline"])

	res = run(t, "", "show", "post", "s1", "--script")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.out, `<script type="application/ld+json">`))

	res = run(t, "", "show", "post", "nope")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, models.ErrNotFound))
}

func TestPrimary(t *testing.T) {
	env := setupProject(t)

	res := run(t, "", "primary", "post", "s2")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, models.ErrInvalidState))
	assert.Contains(t, res.err.Error(), view.ProNotice)

	t.Setenv("SCHEMADECK_PRO", "true")
	res = run(t, "", "primary", "post", "s2")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Product (s2) is now the primary schema of post")

	saved := env.ReadItem("post")
	assert.Equal(t, 1, saved.PrimaryCount())
	primary, _ := saved.Primary()
	assert.Equal(t, "s2", primary.Key)

	res = run(t, "", "primary", "post", "nope")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, models.ErrNotFound))
}

func TestDelete(t *testing.T) {
	env := setupProject(t)

	res := run(t, "n\n", "delete", "post", "s1")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Permanently delete Article 'Launch post' from post?")
	assert.Contains(t, res.out, "Deletion cancelled")
	assert.Equal(t, 3, env.ReadItem("post").Len())

	res = run(t, "y\n", "delete", "post", "s1")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Deleted Article: s1")
	assert.Contains(t, res.errOut, "post no longer has a primary schema")
	saved := env.ReadItem("post")
	assert.Equal(t, []string{"s2", "s3"}, saved.Keys())
	assert.Equal(t, 0, saved.PrimaryCount())

	res = run(t, "", "delete", "post", "s2", "--force")
	require.NoError(t, res.err)
	assert.NotContains(t, res.out, "Permanently delete")
	assert.Equal(t, []string{"s3"}, env.ReadItem("post").Keys())

	res = run(t, "", "delete", "post", "s3", "--yes")
	require.NoError(t, res.err)
	assert.True(t, env.ReadItem("post").IsEmpty())

	res = run(t, "", "delete", "post", "s1", "--force")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, models.ErrNotFound))
}

func TestAdd(t *testing.T) {
	env := th.NewTestEnvironment(t).ChangeToRoot()

	res := run(t, "", "add", "landing", "Product")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Added Product to landing")

	res = run(t, "", "add", "landing", "Recipe", "--title", "Pancakes")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, view.ProNotice)
	assert.Contains(t, res.out, "No template for Recipe")

	saved := env.ReadItem("landing")
	require.Equal(t, 2, saved.Len())
	entries := saved.Entries()
	assert.True(t, entries[0].Metadata.IsPrimary, "first schema becomes primary")
	assert.Contains(t, entries[0].Properties, "offers")
	assert.Equal(t, "Pancakes", entries[1].Metadata.Title)
	assert.False(t, entries[1].Metadata.IsPrimary)

	res = run(t, "", "add", "landing", "Event", "--primary")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, models.ErrInvalidState)
	assert.Contains(t, res.err.Error(), view.ProNotice)
	saved = env.ReadItem("landing")
	assert.Equal(t, 2, saved.Len(), "rejected add writes nothing")
	primary, _ := saved.Primary()
	assert.Equal(t, "Product", primary.Type)

	res = run(t, "", "add", "fresh", "Article", "--primary")
	require.NoError(t, res.err)
	first, _ := env.ReadItem("fresh").Primary()
	assert.Equal(t, "Article", first.Type)

	t.Setenv("SCHEMADECK_PRO", "true")
	res = run(t, "", "add", "landing", "Event", "--primary")
	require.NoError(t, res.err)
	assert.NotContains(t, res.errOut, view.ProNotice)
	saved = env.ReadItem("landing")
	require.Equal(t, 3, saved.Len())
	primary, _ = saved.Primary()
	assert.Equal(t, "Event", primary.Type)
	assert.Equal(t, 1, saved.PrimaryCount())

	res = run(t, "", "add", "landing", "not-a-type")
	assert.Error(t, res.err)
	res = run(t, "", "add", "Bad Item", "Article")
	assert.Error(t, res.err)
}

func TestExport(t *testing.T) {
	env := setupProject(t)

	res := run(t, "", "export", "post")
	require.NoError(t, res.err)
	var doc struct {
		Graph []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.out), &doc))
	require.Len(t, doc.Graph, 3)
	assert.Equal(t, "Article", doc.Graph[0]["@type"])

	target := filepath.Join(env.Root, "post.html")
	res = run(t, "", "export", "post", "--script", "-f", target)
	require.NoError(t, res.err)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), `<script type="application/ld+json">`))

	env.WriteItem("empty", models.Collection{})
	res = run(t, "", "export", "empty")
	assert.Error(t, res.err)
}

func TestCopy(t *testing.T) {
	setupProject(t)
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	res := run(t, "", "copy", "post")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Copied 3 schemas of post to clipboard")
	assert.Contains(t, copied, `"@graph"`)

	res = run(t, "", "copy", "post", "s3")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Copied FAQPage 'Questions' to clipboard")
	assert.Contains(t, copied, `"@type": "FAQPage"`)

	res = run(t, "", "copy", "post", "nope")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, models.ErrNotFound))
}

func TestEdit(t *testing.T) {
	env := th.NewTestEnvironment(t).ChangeToRoot()
	var opened string
	orig := openInEditor
	openInEditor = func(path string) error {
		opened = path
		return os.WriteFile(path, []byte(`item: page
schemas:
  - key: a
    '@type': Article
    metadata:
      isPrimary: true
  - key: b
    '@type': Product
    metadata:
      isPrimary: true
`), 0644)
	}
	t.Cleanup(func() { openInEditor = orig })

	res := run(t, "", "edit", "page")
	require.NoError(t, res.err)
	assert.True(t, strings.HasSuffix(opened, filepath.Join(files.ProjectDir, files.ItemsDir, "page.yaml")), opened)
	assert.True(t, env.Repo.ItemExists("page"))
	assert.Contains(t, res.out, "Created empty item page")
	assert.Contains(t, res.out, "Saved page (2 schemas)")
	assert.Contains(t, res.errOut, "page has 2 primary schemas")

	openInEditor = func(path string) error {
		return os.WriteFile(path, []byte("schemas: [\n"), 0644)
	}
	res = run(t, "", "edit", "page")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "no longer valid")
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "schemadeck version test\n", res.out)
}
