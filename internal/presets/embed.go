// Package presets provides the embedded catalogue of named maze layouts.
package presets

import "embed"

// dataFS holds every JSON file in this directory.
//
//go:embed *.json
var dataFS embed.FS
