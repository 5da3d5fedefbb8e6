package cmd

import (
	"context"
	"log/slog"

	"github.com/acfkit/acf"
)

// Fmt parses a document and rewrites it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical ACF syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as a colorized tree."`
}

// Native formats input as canonical ACF syntax.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, f.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("format", "native"))
	}

	return doc.Format(ctx, stdout(ctx))
}

// JSON parses input and outputs it as JSON with source key order preserved.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, j.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("format", "json"))
	}

	return doc.FormatJSON(ctx, stdout(ctx), j.Indent)
}

// YAML parses input and outputs it as YAML with source key order preserved.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, y.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return doc.FormatYAML(ctx, stdout(ctx), y.Indent)
}

// Tree parses input and renders it as a colorized tree.
type Tree struct {
	Plain bool `help:"Disable colors." negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := parseSource(ctx, t.Source)
	if err != nil {
		return acf.WrapError(err).
			With(slog.String("format", "tree"))
	}

	return write(stdout(ctx), renderTree(doc, !t.Plain))
}
