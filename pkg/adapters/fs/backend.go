// Package fs implements the file-backed backend: the whole note
// collection lives in a single JSON file, rewritten atomically on every
// save. This mirrors the one-key-one-blob layout of the original data
// and carries the same tradeoff — last writer wins for the entire
// collection.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

// DefaultFileName is the data file holding the serialized collection.
// The name matches the storage key used by earlier versions of the app.
const DefaultFileName = "notebook-notes.json"

// Config holds the configuration for the filesystem backend.
type Config struct {
	Path      string // data directory
	FileName  string // collection file inside Path; DefaultFileName if empty
	AutoInit  bool   // create the directory and an empty collection file
	MustExist bool   // require the data directory to already exist
	Logger    *slog.Logger
}

// Backend implements core.Backend on a single JSON file.
type Backend struct {
	Path   string
	config Config

	watcher *watcher
}

// NewBackend creates a new filesystem-backed backend.
func NewBackend(config Config) *Backend {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	return &Backend{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup for the backend (mkdir,
// empty collection file).
func (b *Backend) Initialize(ctx context.Context) error {
	if b.config.MustExist {
		info, err := os.Stat(b.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", b.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat data directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", b.Path)
		}
		return nil
	}

	if err := os.MkdirAll(b.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if b.config.AutoInit {
		if _, err := os.Stat(b.file()); os.IsNotExist(err) {
			if err := writeFileAtomic(b.file(), []byte("[]\n"), 0644); err != nil {
				return fmt.Errorf("failed to create collection file: %w", err)
			}
		}
	}

	return nil
}

// Load reads and deserializes the whole collection. A missing file is
// an empty collection, not an error.
func (b *Backend) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(b.file())
	if os.IsNotExist(err) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	if len(data) == 0 {
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to parse collection file: %w", err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

// Save serializes the whole collection and writes it atomically.
func (b *Backend) Save(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := os.MkdirAll(b.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if b.config.Logger != nil {
		b.config.Logger.Debug("writing collection", "path", b.file(), "notes", len(notes))
	}

	if err := writeFileAtomic(b.file(), data, 0644); err != nil {
		return fmt.Errorf("failed to write collection file: %w", err)
	}
	return nil
}

func (b *Backend) file() string {
	return filepath.Join(b.Path, b.config.FileName)
}

var _ core.Backend = (*Backend)(nil)
var _ core.Watchable = (*Backend)(nil)
