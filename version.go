package matchgen

import _ "embed"

// Version is the release of matchgen, read from the VERSION file.
//
//go:embed VERSION
var Version string
