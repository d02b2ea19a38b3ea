package platform

import (
	"log/slog"
	"time"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

// options holds the internal configuration for the quick-drop store.
type options struct {
	backend     core.Backend
	logger      *slog.Logger
	clock       func() time.Time
	fileName    string
	autoInit    bool
	mustExist   bool
	forceTemp   bool
	eventBuffer int
}

// Option defines a functional option for configuring quick-drop.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit:    true,
		eventBuffer: 16,
	}
}

// WithBackend allows injecting a custom storage backend (e.g. in-memory).
// If provided, the default filesystem backend is skipped.
func WithBackend(backend core.Backend) Option {
	return func(o *options) { o.backend = backend }
}

// WithLogger sets the logger for the store and the backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock overrides the store's time source (tests).
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithFileName overrides the collection file name inside the data directory.
func WithFileName(name string) Option {
	return func(o *options) { o.fileName = name }
}

// WithAutoInit controls automatic creation of the data directory and an
// empty collection file. Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) { o.autoInit = auto }
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) { o.mustExist = must }
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) { o.forceTemp = force }
}

// WithEventBuffer sets the buffer size of watch event channels.
func WithEventBuffer(size int) Option {
	return func(o *options) { o.eventBuffer = size }
}
