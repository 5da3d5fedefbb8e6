package acf

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/acfkit/acf/log"
)

// Option configures document parsing behavior.
type Option func(*Document)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// ParseString parses ACF source text and returns the Document.
// An empty input yields an empty Document, not an error.
func ParseString(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Document, error) {
	doc := &Document{}

	for _, opt := range opts {
		opt(doc)
	}

	p := &parser{
		scan:   newTokenizer(input),
		logger: doc.logger,
	}

	p.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(input)))

	err := p.parseDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("entry_count", len(doc.Entries)))

	return doc, nil
}

// ParseReader parses ACF source from an io.Reader.
// Read failures are reported as [ErrRead].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrRead.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseFile reads the file at path (UTF-8 assumed) and parses its content.
// I/O failures are reported as [ErrRead], distinct from grammar errors.
func ParseFile(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrRead.Wrap(err).
			With(slog.String("path", path))
	}

	return ParseString(ctx, string(data), opts...)
}

// parser holds the parser state. It consumes tokens via recursive descent
// and performs no error recovery: the first fatal error halts the parse.
type parser struct {
	scan   *tokenizer
	logger log.Logger
}

// parseDocument parses the entire input as a list of entries:
// Document → Entry* EOF.
func (p *parser) parseDocument(ctx context.Context, doc *Document) error {
	for {
		tok, err := p.scan.peek()
		if err != nil {
			return err
		}

		switch tok.kind {
		case tokenEOF:
			return nil

		case tokenCloseBrace:
			return ErrUnmatchedCloseBrace.WithPosition(tok.pos)
		}

		entry, err := p.parseEntry(ctx)
		if err != nil {
			return err
		}

		doc.Entries = append(doc.Entries, entry)
	}
}

// parseEntry parses: Token '{' Pair* '}'.
func (p *parser) parseEntry(ctx context.Context) (*Entry, error) {
	name, err := p.scan.next()
	if err != nil {
		return nil, err
	}

	switch name.kind {
	case tokenQuoted, tokenBare:
		// ok

	case tokenEOF:
		return nil, ErrUnexpectedEOF.WithPosition(name.pos).
			With(slog.String("expected", "entry name"))

	default:
		return nil, ErrUnexpectedToken.WithPosition(name.pos).
			With(
				slog.String("expected", "entry name"),
				slog.String("found", name.describe()),
			)
	}

	open, err := p.scan.next()
	if err != nil {
		return nil, err
	}

	switch open.kind {
	case tokenOpenBrace:
		// ok

	case tokenEOF:
		return nil, ErrUnexpectedEOF.WithPosition(open.pos).
			With(
				slog.String("expected", `"{"`),
				slog.String("entry", name.text),
			)

	default:
		return nil, ErrUnexpectedToken.WithPosition(open.pos).
			With(
				slog.String("expected", `"{"`),
				slog.String("found", open.describe()),
			)
	}

	return p.parseEntryBody(ctx, name.text, open.pos)
}

// parseEntryBody parses Pair* '}' after the opening brace has been consumed.
// openPos is the position of that brace, reported when the matching closing
// brace is missing.
func (p *parser) parseEntryBody(
	ctx context.Context,
	name string,
	openPos Position,
) (*Entry, error) {
	entry := newEntry(name)

	for {
		tok, err := p.scan.peek()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokenCloseBrace:
			_, _ = p.scan.next()

			p.logger.TraceContext(ctx, "entry parsed",
				slog.String("name", name),
				slog.Int("expression_count", entry.Len()),
			)

			return entry, nil

		case tokenEOF:
			return nil, ErrUnmatchedOpenBrace.WithPosition(openPos).
				With(slog.String("entry", name))
		}

		err = p.parsePair(ctx, entry)
		if err != nil {
			return nil, err
		}
	}
}

// parsePair parses: Token (Scalar | EntryBody), storing the result in entry.
// Duplicate keys replace the previous value in place (last-value-wins).
func (p *parser) parsePair(ctx context.Context, entry *Entry) error {
	key, err := p.scan.next()
	if err != nil {
		return err
	}

	// parseEntryBody only dispatches here for quoted, bare, or open-brace
	// tokens; an open brace cannot begin a key.
	if key.kind == tokenOpenBrace {
		return ErrUnexpectedToken.WithPosition(key.pos).
			With(
				slog.String("expected", "key"),
				slog.String("found", key.describe()),
			)
	}

	tok, err := p.scan.peek()
	if err != nil {
		return err
	}

	switch tok.kind {
	case tokenOpenBrace:
		_, _ = p.scan.next()

		nested, err := p.parseEntryBody(ctx, key.text, tok.pos)
		if err != nil {
			return err
		}

		entry.put(key.text, Value{Kind: KindNested, Nested: nested})

		return nil

	case tokenQuoted, tokenBare:
		_, _ = p.scan.next()

		entry.put(key.text, Value{Kind: KindScalar, Scalar: tok.text})

		return nil

	case tokenEOF:
		return ErrUnexpectedEOF.WithPosition(tok.pos).
			With(
				slog.String("expected", "value"),
				slog.String("key", key.text),
			)

	default:
		return ErrUnexpectedToken.WithPosition(tok.pos).
			With(
				slog.String("expected", "value"),
				slog.String("found", tok.describe()),
			)
	}
}
