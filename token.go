package acf

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenOpenBrace
	tokenCloseBrace
	tokenQuoted
	tokenBare
)

// String returns a string representation of the token kind.
func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenOpenBrace:
		return `"{"`
	case tokenCloseBrace:
		return `"}"`
	case tokenQuoted:
		return "quoted string"
	case tokenBare:
		return "bare token"
	default:
		return "unknown"
	}
}

// token is a single lexical token with its source position.
// For tokenQuoted, text holds the decoded content with escape sequences
// already resolved. For tokenBare, text is the raw run of characters.
type token struct {
	kind tokenKind
	text string
	pos  Position
}

// describe returns the token as shown in error messages.
func (t token) describe() string {
	switch t.kind {
	case tokenQuoted, tokenBare:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	default:
		return t.kind.String()
	}
}

// tokenizer scans ACF source text into a lazy sequence of tokens,
// tracking line and column for diagnostics. It supports one token of
// lookahead via peek.
type tokenizer struct {
	input  string
	pos    int // byte offset of next unread character
	line   int // 1-based
	col    int // 1-based
	ahead  *token
	aheadE error
}

// newTokenizer creates a tokenizer for the given input.
// A leading UTF-8 byte order mark is skipped; Steam writes one into some
// manifest files.
func newTokenizer(input string) *tokenizer {
	z := &tokenizer{input: input, line: 1, col: 1}

	const bom = "\ufeff"
	if strings.HasPrefix(z.input, bom) {
		z.pos += len(bom)
	}

	return z
}

// peek returns the next token without consuming it.
func (z *tokenizer) peek() (token, error) {
	if z.ahead == nil {
		tok, err := z.scan()
		z.ahead, z.aheadE = &tok, err
	}

	return *z.ahead, z.aheadE
}

// next returns the next token and consumes it.
func (z *tokenizer) next() (token, error) {
	if z.ahead != nil {
		tok, err := *z.ahead, z.aheadE
		z.ahead, z.aheadE = nil, nil

		return tok, err
	}

	return z.scan()
}

// scan produces the next token from the input.
func (z *tokenizer) scan() (token, error) {
	z.skipSpaceAndComments()

	pos := z.position()

	if z.eof() {
		return token{kind: tokenEOF, pos: pos}, nil
	}

	switch z.input[z.pos] {
	case '{':
		z.advance()

		return token{kind: tokenOpenBrace, text: "{", pos: pos}, nil

	case '}':
		z.advance()

		return token{kind: tokenCloseBrace, text: "}", pos: pos}, nil

	case '"':
		return z.scanQuoted(pos)

	default:
		return z.scanBare(pos), nil
	}
}

// scanQuoted scans a double-quoted string starting at the current position,
// decoding the escape sequences \", \\, \n, and \t. Any other backslash pair
// passes through verbatim, matching observed Steam output. Reaching end of
// input before the closing quote is a fatal lexical error.
func (z *tokenizer) scanQuoted(pos Position) (token, error) {
	z.advance() // opening quote

	var text strings.Builder

	for !z.eof() {
		switch ch := z.input[z.pos]; ch {
		case '"':
			z.advance()

			return token{kind: tokenQuoted, text: text.String(), pos: pos}, nil

		case '\\':
			z.advance()

			if z.eof() {
				break
			}

			switch esc := z.input[z.pos]; esc {
			case '"':
				text.WriteByte('"')
			case '\\':
				text.WriteByte('\\')
			case 'n':
				text.WriteByte('\n')
			case 't':
				text.WriteByte('\t')
			default:
				text.WriteByte('\\')
				text.WriteByte(esc)
			}

			z.advance()

		default:
			start := z.pos
			z.advance()
			text.WriteString(z.input[start:z.pos])
		}
	}

	return token{}, ErrUnterminatedString.WithPosition(pos).
		With(slog.String("partial", text.String()))
}

// scanBare scans a maximal run of characters that are not whitespace,
// braces, quotes, or the start of a comment.
func (z *tokenizer) scanBare(pos Position) token {
	start := z.pos

	for !z.eof() {
		ch := z.input[z.pos]
		if isSpace(ch) || ch == '{' || ch == '}' || ch == '"' {
			break
		}

		if ch == '/' && z.pos+1 < len(z.input) && z.input[z.pos+1] == '/' {
			break
		}

		z.advance()
	}

	return token{kind: tokenBare, text: z.input[start:z.pos], pos: pos}
}

// skipSpaceAndComments discards whitespace and '//' line comments.
func (z *tokenizer) skipSpaceAndComments() {
	for !z.eof() {
		ch := z.input[z.pos]

		if isSpace(ch) {
			z.advance()

			continue
		}

		if ch == '/' && z.pos+1 < len(z.input) && z.input[z.pos+1] == '/' {
			z.skipLineComment()

			continue
		}

		return
	}
}

// skipLineComment discards characters up to and including the next newline.
func (z *tokenizer) skipLineComment() {
	for !z.eof() && z.input[z.pos] != '\n' {
		z.advance()
	}

	if !z.eof() {
		z.advance() // '\n'
	}
}

// advance consumes one rune and updates position tracking.
func (z *tokenizer) advance() {
	if z.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(z.input[z.pos:])

	z.pos += size
	if r == '\n' {
		z.line++
		z.col = 1
	} else {
		z.col++
	}
}

func (z *tokenizer) eof() bool {
	return z.pos >= len(z.input)
}

func (z *tokenizer) position() Position {
	return Position{
		Offset: z.pos,
		Line:   z.line,
		Column: z.col,
	}
}

// isSpace reports whether ch is an ACF token separator.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
