package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/models"
)

const (
	ProjectDir = ".schemadeck"
	ItemsDir   = "items"
	ConfigFile = "config.yaml"
)

// ItemFile is the on-disk layout of one content item
type ItemFile struct {
	Item    string            `yaml:"item"`
	Schemas models.Collection `yaml:"schemas"`
}

// Repository stores content items as YAML files under <root>/.schemadeck/items
type Repository struct {
	root string
	log  pslog.Logger
}

// NewRepository returns a repository for the project rooted at root
func NewRepository(root string, logger pslog.Logger) *Repository {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Repository{root: root, log: logger}
}

// InitProjectStructure creates the project directories under root
func InitProjectStructure(root string) error {
	dirs := []string{
		filepath.Join(root, ProjectDir),
		filepath.Join(root, ProjectDir, ItemsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectPath returns the .schemadeck directory of the repository
func (r *Repository) ProjectPath() string {
	return filepath.Join(r.root, ProjectDir)
}

// Initialized reports whether the project directory exists
func (r *Repository) Initialized() bool {
	info, err := os.Stat(r.ProjectPath())
	return err == nil && info.IsDir()
}

// ItemPath returns the file holding item
func (r *Repository) ItemPath(item string) string {
	return filepath.Join(r.root, ProjectDir, ItemsDir, item+".yaml")
}

// ItemExists reports whether item has a file
func (r *Repository) ItemExists(item string) bool {
	_, err := os.Stat(r.ItemPath(item))
	return err == nil
}

// ReadItem loads the collection of item. A missing file is an empty item
func (r *Repository) ReadItem(item string) (models.Collection, error) {
	if err := ValidateItemName(item); err != nil {
		return models.Collection{}, err
	}
	content, err := os.ReadFile(r.ItemPath(item))
	if err != nil {
		if os.IsNotExist(err) {
			return models.Collection{}, nil
		}
		return models.Collection{}, fmt.Errorf("failed to read item %s: %w", item, err)
	}

	var file ItemFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return models.Collection{}, fmt.Errorf("failed to parse item YAML %s: %w", item, err)
	}
	return file.Schemas, nil
}

// WriteItem stores the collection of item, replacing the file atomically
func (r *Repository) WriteItem(item string, schemas models.Collection) error {
	if err := ValidateItemName(item); err != nil {
		return err
	}
	absPath := r.ItemPath(item)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for item: %w", err)
	}

	content, err := yaml.Marshal(ItemFile{Item: item, Schemas: schemas})
	if err != nil {
		return fmt.Errorf("failed to marshal item to YAML: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+item+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write item %s: %w", item, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write item %s: %w", item, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write item %s: %w", item, err)
	}
	if err := os.Rename(tmp.Name(), absPath); err != nil {
		return fmt.Errorf("failed to write item %s: %w", item, err)
	}

	r.log.Debug("item written", "item", item, "schemas", schemas.Len())
	return nil
}

// ListItems returns the names of all stored items, sorted
func (r *Repository) ListItems() ([]string, error) {
	itemsPath := filepath.Join(r.root, ProjectDir, ItemsDir)

	entries, err := os.ReadDir(itemsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		items = append(items, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(items)
	return items, nil
}

// AddEntry appends entry to item, assigning a key when it has none. The
// entry stays primary only when it is the first of the item; moving the
// primary of a populated item goes through the controller.
func (r *Repository) AddEntry(item string, entry models.SchemaEntry) (models.SchemaEntry, error) {
	schemas, err := r.ReadItem(item)
	if err != nil {
		return models.SchemaEntry{}, err
	}
	if entry.Key == "" {
		entry.Key = NewEntryKey()
	}
	if schemas.Has(entry.Key) {
		return models.SchemaEntry{}, fmt.Errorf("item %s already has a schema with key %s", item, entry.Key)
	}
	entry.Metadata.IsPrimary = entry.Metadata.IsPrimary && schemas.IsEmpty()
	schemas = schemas.With(entry)
	if err := r.WriteItem(item, schemas); err != nil {
		return models.SchemaEntry{}, err
	}
	return entry, nil
}

// LoadCollection implements controller.Persister
func (r *Repository) LoadCollection(_ context.Context, item string) (models.Collection, error) {
	return r.ReadItem(item)
}

// SaveCollection implements controller.Persister
func (r *Repository) SaveCollection(_ context.Context, item string, schemas models.Collection) error {
	return r.WriteItem(item, schemas)
}

// NewEntryKey returns a fresh, time-sortable schema key
func NewEntryKey() string {
	return "schema-" + strings.ToLower(ulid.Make().String())
}
