//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the acf module embedded at build time.
// It is printed by the CLI in help output.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and log attributes.
	Name = "acf"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Valve ACF configuration parser and inspector"
)
