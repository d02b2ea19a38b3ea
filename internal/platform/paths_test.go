package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDataPath_NoForce(t *testing.T) {
	assert.Equal(t, DefaultDataDir(), ResolveDataPath("", false))
	assert.Equal(t, "/srv/notes", ResolveDataPath("/srv/notes", false))
}

func TestResolveDataPath_ForceTempTrustsTempPaths(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Clean(dir), ResolveDataPath(dir, true))
}

func TestResolveDataPath_ForceTempRerootsRealPaths(t *testing.T) {
	got := ResolveDataPath("/home/someone/notes", true)

	assert.True(t, strings.HasPrefix(got, os.TempDir()), "got %s", got)
	assert.Equal(t, "notes", filepath.Base(got))
}

func TestResolveDataPath_ForceTempEmptyPath(t *testing.T) {
	got := ResolveDataPath("", true)

	assert.True(t, strings.HasPrefix(got, os.TempDir()))
	assert.Equal(t, "default", filepath.Base(got))
}

func TestIsDevRun(t *testing.T) {
	// Test binaries live in temp build dirs, so this must hold here.
	assert.True(t, IsDevRun())
}
