package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/pkg/files"
	"github.com/pluqqy/schemadeck/pkg/models"
)

// TestEnvironment is an initialized project in a temporary directory
type TestEnvironment struct {
	t    *testing.T
	Root string
	Repo *files.Repository
}

// NewTestEnvironment creates a project under t.TempDir()
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, files.InitProjectStructure(root))
	return &TestEnvironment{t: t, Root: root, Repo: files.NewRepository(root, nil)}
}

// ChangeToRoot makes the project the working directory until the test ends
func (e *TestEnvironment) ChangeToRoot() *TestEnvironment {
	e.t.Helper()
	e.t.Chdir(e.Root)
	return e
}

// WriteItem stores schemas under item
func (e *TestEnvironment) WriteItem(item string, schemas models.Collection) {
	e.t.Helper()
	require.NoError(e.t, e.Repo.WriteItem(item, schemas))
}

// ReadItem loads item, failing the test on error
func (e *TestEnvironment) ReadItem(item string) models.Collection {
	e.t.Helper()
	schemas, err := e.Repo.ReadItem(item)
	require.NoError(e.t, err)
	return schemas
}
