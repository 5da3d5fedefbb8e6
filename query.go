package acf

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query evaluates an expr-lang predicate against every entry in the document,
// root entries first, then nested entries in depth-first order. Entries for
// which the predicate yields true are returned in document order.
//
// Each entry is presented to the predicate as its key-value mapping (scalars
// as strings, nested entries as maps), with the entry's own name bound to
// "_name". Keys absent from an entry evaluate as nil rather than failing
// compilation, so one predicate can filter heterogeneous entries:
//
//	appid == "440"
//	_name == "UserConfig" && language != nil
func (d *Document) Query(
	ctx context.Context,
	predicate string,
) ([]*Entry, error) {
	program, err := expr.Compile(predicate,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).
			With(slog.String("predicate", predicate))
	}

	var matched []*Entry

	for _, e := range d.Entries {
		matched, err = queryEntry(ctx, program, e, matched)
		if err != nil {
			return nil, err
		}
	}

	d.logger.TraceContext(ctx, "query complete",
		slog.String("predicate", predicate),
		slog.Int("matched", len(matched)),
	)

	return matched, nil
}

// queryEntry evaluates the compiled predicate against entry and all of its
// nested entries, appending matches to acc.
func queryEntry(
	ctx context.Context,
	program *vm.Program,
	entry *Entry,
	acc []*Entry,
) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := entry.ToMap()
	env["_name"] = entry.Name

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrQueryEvaluate.Wrap(err).
			With(slog.String("entry", entry.Name))
	}

	if ok, _ := result.(bool); ok {
		acc = append(acc, entry)
	}

	for _, p := range entry.pairs {
		if p.value.Kind != KindNested {
			continue
		}

		acc, err = queryEntry(ctx, program, p.value.Nested, acc)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
