// Package cmd provides the subcommands for inspecting and converting
// ACF documents.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the name of
	// the default configuration entry parsed from the configuration file.
	ConfigIdentifier = "config"
)
