// Package acf parses Valve's ACF configuration text format into a structured
// in-memory document. ACF is an undocumented, nested key-value format in the
// KeyValues/VDF family, used by Steam for application and workshop state
// files (appmanifest_*.acf).
//
// # Grammar
//
// Informal EBNF:
//
//	Document  → Entry* EOF
//	Entry     → Token '{' Pair* '}'
//	Pair      → Token (Scalar | EntryBody)
//	Scalar    → Token
//	EntryBody → '{' Pair* '}'
//	Token     → QuotedString | BareToken
//
// Whitespace separates tokens, '//' starts a line comment, and quoted
// strings decode the escape sequences \", \\, \n, and \t. Braces are always
// single-character tokens, even when adjacent to other token text.
//
// # Example
//
//	"AppState"
//	{
//	    "appid"      "440"
//	    "UserConfig"
//	    {
//	        "language"  "english"
//	    }
//	}
//
// # Semantics
//
// A parsed [Document] is an ordered sequence of root-level [Entry] values.
// Each Entry owns an insertion-ordered mapping from keys to [Value] variants,
// where a value is either a scalar string or a nested Entry. Scalars are
// opaque text: the parser never reinterprets them as numbers or booleans.
// Duplicate keys within one entry follow last-value-wins semantics with the
// original insertion position retained. The true grammar is unpublished, so
// duplicate handling is a documented assumption rather than a verified fact.
//
// Every parse is a pure function of its input. Documents are immutable after
// parsing, so independent parses may run concurrently without coordination.
//
// # Errors
//
// Grammar violations are reported as [*Error] values carrying a sentinel
// kind ([ErrUnterminatedString], [ErrUnexpectedToken], [ErrUnmatchedOpenBrace],
// [ErrUnmatchedCloseBrace], [ErrUnexpectedEOF]) and the source [Position] of
// the failure. I/O failures from [ParseFile] and [ParseReader] surface as
// [ErrRead], distinct from all grammar errors. The parser stops at the first
// fatal error and never attempts to resynchronize.
package acf
