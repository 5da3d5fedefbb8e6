package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/acfkit/acf"
	"github.com/acfkit/acf/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// stdout returns the output writer for command results. When a kong.Context
// is present its configured writer is used, which lets tests capture output.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// parseSource parses the document at the given source path, where "-" selects
// stdin. Every subcommand funnels its input through here so they agree on
// buffering and error reporting.
func parseSource(ctx context.Context, source string) (*acf.Document, error) {
	if source == stdinSource {
		return acf.ParseReader(
			ctx,
			bufio.NewReader(os.Stdin),
			acf.WithLogger(log.Default()),
		)
	}

	return acf.ParseFile(ctx, source, acf.WithLogger(log.Default()))
}

// write writes s to w, mapping failures to [ErrWriteOut].
func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	if err != nil {
		return ErrWriteOut.Wrap(err)
	}

	return nil
}
