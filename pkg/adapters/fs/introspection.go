package fs

import (
	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// BackendState exposes internal state for observability.
type BackendState struct {
	Path          string `json:"path"`
	FileName      string `json:"file_name"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	watcherActive := false
	if b.watcher != nil {
		watcherActive = b.watcher.State().Status == worker.StatusRunning
	}

	return BackendState{
		Path:          b.Path,
		FileName:      b.config.FileName,
		WatcherActive: watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "fs-backend"
}

var _ introspection.Introspectable = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)
