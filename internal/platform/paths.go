package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// appDirName is the directory under the user config dir that plays the
// role of the browser profile: everything the app persists lives there.
const appDirName = "quickdrop"

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "." + appDirName
		}
		return filepath.Join(home, "."+appDirName)
	}
	return filepath.Join(configDir, appDirName)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary
// directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveDataPath determines the actual data directory based on safety
// rules. An empty userPath resolves to the default per-user directory.
// If forceTemp is set, the path is re-rooted into a temporary directory
// to avoid polluting the user's real data during dev/test runs.
func ResolveDataPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return DefaultDataDir()
		}
		return userPath
	}

	// If the userPath is already inside the system temp directory (e.g.
	// created by t.TempDir() or explicit intent), trust it as-is.
	cleanUserPath := filepath.Clean(userPath)
	tempRoot := os.TempDir()

	rel, err := filepath.Rel(tempRoot, cleanUserPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return cleanUserPath
	}

	// Otherwise, force it into our namespaced dev directory.
	baseTemp := filepath.Join(os.TempDir(), appDirName+"-dev")
	subName := "default"
	if userPath != "" && userPath != "." && userPath != "./" {
		subName = filepath.Base(userPath)
		if subName == "." || subName == string(os.PathSeparator) {
			subName = "default"
		}
	}

	return filepath.Join(baseTemp, subName)
}
