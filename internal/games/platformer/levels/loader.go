// Package levels loads user-authored level files from a directory.
// This package depends on the platformer package but not the other way
// around; built-in levels live with the game.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// yamlLevel is the on-disk YAML structure of a level file.
type yamlLevel struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	TimeLimit int      `yaml:"time_limit,omitempty"` // seconds; 0 uses config
	Rows      []string `yaml:"rows"`
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering; invalid files are
// skipped.
func (l *Loader) LoadAll() ([]*platformer.Level, error) {
	var out []*platformer.Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (*platformer.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	lvl := &platformer.Level{
		ID:               yl.ID,
		Name:             yl.Name,
		TimeLimitSeconds: yl.TimeLimit,
		Rows:             yl.Rows,
	}
	if err := validate(lvl); err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*platformer.Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// validate checks the structural contract: an ID, at least one row, and
// equal-length rows.
func validate(lvl *platformer.Level) error {
	if lvl.ID == "" {
		return fmt.Errorf("missing id")
	}
	if len(lvl.Rows) == 0 {
		return fmt.Errorf("no rows")
	}
	width := len(lvl.Rows[0])
	for i, row := range lvl.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has length %d, want %d", i, len(row), width)
		}
	}
	return nil
}
