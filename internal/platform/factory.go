package platform

import (
	"context"

	"github.com/mdyhakash/quick-drop/pkg/adapters/fs"
	"github.com/mdyhakash/quick-drop/pkg/core"
)

// New builds a ready-to-use Store. The path argument is the data
// directory; empty resolves to the per-user default. Dev runs (`go run`,
// `go test`) are re-rooted into a temp sandbox unless the caller injects
// a backend of its own.
func New(path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	backend := o.backend
	if backend == nil {
		useTemp := o.forceTemp || IsDevRun()
		resolvedPath := ResolveDataPath(path, useTemp)

		if o.logger != nil && useTemp {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolvedPath)
		}

		fsBackend := fs.NewBackend(fs.Config{
			Path:      resolvedPath,
			FileName:  o.fileName,
			AutoInit:  o.autoInit,
			MustExist: o.mustExist || (!o.autoInit && !useTemp),
			Logger:    o.logger,
		})
		if err := fsBackend.Initialize(context.Background()); err != nil {
			return nil, err
		}
		backend = fsBackend
	}

	storeOpts := []core.StoreOption{
		core.WithEventBuffer(o.eventBuffer),
	}
	if o.logger != nil {
		storeOpts = append(storeOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}

	return core.NewStore(backend, storeOpts...), nil
}
