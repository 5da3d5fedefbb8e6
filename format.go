package acf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the document in native ACF syntax to the writer.
//
// The output is canonical rather than byte-identical to the source: every
// token is quoted with escape sequences reapplied, nesting is indented with
// tabs, and comments are not reproduced. Reparsing the output yields a
// document equal to the original.
func (d *Document) Format(_ context.Context, w io.Writer) error {
	for i, e := range d.Entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		err := formatEntry(e, w, 0)
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the document as JSON to the writer.
// Key order within each entry follows the source; root entries become
// top-level object members in parse order.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(d, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(d)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the document as YAML to the writer, preserving key order.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(
		ctx,
		d.toMapSlice(),
		opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// formatEntry writes one entry block at the given nesting depth.
func formatEntry(e *Entry, w io.Writer, depth int) error {
	tabs := strings.Repeat("\t", depth)

	if _, err := fmt.Fprintf(w, "%s%s\n%s{\n", tabs, quote(e.Name), tabs); err != nil {
		return err
	}

	for _, p := range e.pairs {
		switch p.value.Kind {
		case KindScalar:
			_, err := fmt.Fprintf(w, "%s\t%s\t\t%s\n",
				tabs, quote(p.key), quote(p.value.Scalar))
			if err != nil {
				return err
			}

		case KindNested:
			err := formatEntry(p.value.Nested, w, depth+1)
			if err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", tabs)

	return err
}

// quote renders a token as a quoted string, escaping the characters that the
// tokenizer decodes.
func quote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(ch)
		}
	}

	b.WriteByte('"')

	return b.String()
}
