package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/acfkit/acf"
)

// resolve returns a [kong.ConfigurationLoader] that reads config files written
// in ACF syntax, using the entry with the given name as the flag namespace.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config")
//
// The entry's key/value pairs map onto flags by name. Flag names with hyphens
// (e.g., "log-level") may use underscores in the config file (e.g.,
// "log_level"), since hyphens cannot appear in bare ACF tokens without
// quoting. Nested entries become dotted flag names.
//
// Example ACF config file:
//
//	"config"
//	{
//		"log_level"    "debug"
//		"log_format"   "json"
//		"log_pretty"   "true"
//	}
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(
	ctx context.Context,
	name string,
) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := acf.ParseReader(ctx, r)
		if err != nil {
			// Parse error - return empty config
			return config{}, nil
		}

		entry, ok := doc.Entry(name)
		if !ok {
			// Entry not found - return empty config
			return config{}, nil
		}

		return config(flatten(entry, "")), nil
	}
}

// config implements [kong.Resolver] for ACF config files.
type config map[string]string

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but ACF keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten converts an entry to a flat flag map. Nested entry keys are joined
// with dots. Scalars stay strings, which is what Kong expects for parsing.
func flatten(entry *acf.Entry, prefix string) map[string]string {
	result := make(map[string]string, entry.Len())

	for key, v := range entry.Pairs() {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if v.Kind == acf.KindNested {
			for k, s := range flatten(v.Nested, name) {
				result[k] = s
			}

			continue
		}

		result[name] = v.Scalar
	}

	return result
}
