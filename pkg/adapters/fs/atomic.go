package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks the scratch files used by atomic writes; the
// watcher filters them out of change notifications.
const TempFilePrefix = "quickdrop-tmp-"

// writeFileAtomic replaces filename by writing data to a scratch file in
// the same directory and renaming it over the target, so readers see
// either the old collection or the new one, never a partial write.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Chmod(name, perm); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(name, filename); err != nil {
		os.Remove(name)
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
