package quickdrop

import (
	"log/slog"
	"time"

	"github.com/mdyhakash/quick-drop/internal/platform"
	"github.com/mdyhakash/quick-drop/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring quick-drop.
type Option = platform.Option

// Config is the optional user configuration (config.yaml in the data dir).
type Config = platform.Config

// WithBackend allows injecting a custom storage backend.
func WithBackend(backend core.Backend) Option {
	return platform.WithBackend(backend)
}

// WithLogger sets the logger for the store and the backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the store's time source (tests).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithFileName overrides the collection file name inside the data directory.
func WithFileName(name string) Option {
	return platform.WithFileName(name)
}

// WithAutoInit controls automatic creation of the data directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithEventBuffer sets the buffer size of watch event channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new note Store. The path is the data directory; empty
// resolves to the per-user default.
func New(path string, opts ...Option) (*core.Store, error) {
	return platform.New(path, opts...)
}

// LoadConfig reads the user configuration, with defaults for anything
// unset or when no config file exists.
func LoadConfig() (Config, error) {
	return platform.LoadConfig()
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() string {
	return platform.DefaultDataDir()
}

// --- Safety & Utils ---

// ResolveDataPath determines the actual data directory based on safety rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
