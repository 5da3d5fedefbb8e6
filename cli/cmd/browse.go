package cmd

import (
	"context"
	"log/slog"

	"github.com/acfkit/acf"
	"github.com/acfkit/acf/cli/cmd/browse"
	"github.com/acfkit/acf/log"
)

// Browse opens an interactive tree browser over a document.
type Browse struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, b.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("command", "browse"))
	}

	return browse.Run(ctx, doc, log.Default())
}
