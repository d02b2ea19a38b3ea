package quickdrop

import _ "embed"

// Version is the application version, embedded from version.txt so the
// release workflow only touches one file.
//
//go:embed version.txt
var Version string
