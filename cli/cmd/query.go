package cmd

import (
	"context"
	"log/slog"

	"github.com/acfkit/acf"
)

// Query evaluates a predicate expression against every entry in a document
// and prints the entries for which it holds.
type Query struct {
	Names bool `help:"Print only the names of matching entries." short:"n"`

	Predicate string `arg:"" help:"Boolean expression over entry keys, with _name bound to the entry name." name:"predicate"`
	Source    string `       help:"Source input file or '-' for stdin."                                     default:"-"      short:"f"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, q.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("command", "query"))
	}

	matches, err := doc.Query(ctx, q.Predicate)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("predicate", q.Predicate))
	}

	if len(matches) == 0 {
		return ErrNoEntry.With(slog.String("predicate", q.Predicate))
	}

	if q.Names {
		for _, e := range matches {
			if err := write(stdout(ctx), e.Name+"\n"); err != nil {
				return err
			}
		}

		return nil
	}

	result := &acf.Document{Entries: matches}

	return result.Format(ctx, stdout(ctx))
}
