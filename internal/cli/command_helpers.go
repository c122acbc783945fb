package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/internal/config"
	"github.com/pluqqy/schemadeck/pkg/controller"
	"github.com/pluqqy/schemadeck/pkg/files"
	"github.com/pluqqy/schemadeck/pkg/session"
	"github.com/pluqqy/schemadeck/pkg/store"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	Root   string
	Repo   *files.Repository
	Config config.Config
	Logger pslog.Logger
}

// NewCommandContext creates a command context for the project in the working
// directory, loading its configuration.
func NewCommandContext(ctx context.Context) (*CommandContext, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewCommandContextAt(ctx, root)
}

// NewCommandContextAt creates a command context for the project under root
func NewCommandContextAt(ctx context.Context, root string) (*CommandContext, error) {
	logger := pslog.Ctx(ctx)
	repo := files.NewRepository(root, logger)

	cfg, err := config.Load(repo.ProjectPath())
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Root:   root,
		Repo:   repo,
		Config: cfg,
		Logger: logger,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if !c.Repo.Initialized() {
		return fmt.Errorf("no %s directory found. Run 'schemadeck init' first", files.ProjectDir)
	}
	return nil
}

// OpenController loads item and returns a controller over a fresh store and
// editor session, persisting through the project repository.
func (c *CommandContext) OpenController(ctx context.Context, item string) (*controller.Controller, error) {
	if err := ValidateItemName(item); err != nil {
		return nil, err
	}
	schemas, err := c.Repo.LoadCollection(ctx, item)
	if err != nil {
		return nil, err
	}

	logger := c.Logger.With("item", item)
	st := store.NewWithLogger(item, schemas, c.Config.Pro, logger)
	sess := session.NewWithLogger(c.Config.DefaultTab(), logger)

	return controller.New(st, sess, controller.Options{
		Persister: c.Repo,
		Logger:    c.Logger,
	}), nil
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the editor invocation for path
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
