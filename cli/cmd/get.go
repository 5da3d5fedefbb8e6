package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/acfkit/acf"
)

// maxSuggestions bounds the did-you-mean list on a failed lookup.
const maxSuggestions = 3

// Get resolves a key path in a document and prints the value.
type Get struct {
	Path   []string `arg:"" help:"Key path rooted at an entry name" name:"path"`
	Source string   `       help:"Source input file or '-' for stdin"          default:"-" short:"f"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, g.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("command", "get"))
	}

	v, ok := doc.Lookup(g.Path...)
	if !ok {
		return lookupError(doc, g.Path)
	}

	if v.Kind == acf.KindScalar {
		return write(stdout(ctx), v.Scalar+"\n")
	}

	// Nested values print as a canonical ACF block.
	sub := &acf.Document{Entries: []*acf.Entry{v.Nested}}

	return sub.Format(ctx, stdout(ctx))
}

// lookupError reports the first unresolvable path component along with
// fuzzy-matched suggestions from the keys that were available there.
func lookupError(doc *acf.Document, path []string) error {
	candidates := entryNames(doc)
	resolved := make([]string, 0, len(path))

	for _, component := range path {
		v, ok := descend(doc, append(resolved, component))
		if !ok {
			err := ErrNoValue.With(
				slog.String("path", strings.Join(path, "/")),
				slog.String("component", component),
			)

			if s := suggest(component, candidates); len(s) > 0 {
				err = err.With(slog.Any("suggestions", s))
			}

			return err
		}

		resolved = append(resolved, component)

		if v.Kind != acf.KindNested {
			return ErrNoValue.With(
				slog.String("path", strings.Join(path, "/")),
				slog.String("scalar_at", strings.Join(resolved, "/")),
			)
		}

		candidates = entryKeys(v.Nested)
	}

	return ErrNoValue.With(slog.String("path", strings.Join(path, "/")))
}

// descend resolves a path prefix, treating root entries as the first level.
func descend(doc *acf.Document, path []string) (acf.Value, bool) {
	return doc.Lookup(path...)
}

// suggest returns up to maxSuggestions fuzzy matches for input.
func suggest(input string, candidates []string) []string {
	matches := fuzzy.Find(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.Str
	}

	return result
}

func entryNames(doc *acf.Document) []string {
	names := make([]string, 0, len(doc.Entries))
	for e := range doc.All() {
		names = append(names, e.Name)
	}

	return names
}

func entryKeys(e *acf.Entry) []string {
	keys := make([]string, 0, e.Len())
	for k := range e.Keys() {
		keys = append(keys, k)
	}

	return keys
}
