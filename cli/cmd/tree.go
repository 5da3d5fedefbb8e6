package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/acfkit/acf"
)

// Styles.
var (
	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// treeStyles bundles the render styles so plain output can swap in
// passthrough styles without touching the recursion.
type treeStyles struct {
	entry  lipgloss.Style
	key    lipgloss.Style
	value  lipgloss.Style
	branch lipgloss.Style
}

func makeTreeStyles(color bool) treeStyles {
	if !color {
		plain := lipgloss.NewStyle()

		return treeStyles{entry: plain, key: plain, value: plain, branch: plain}
	}

	return treeStyles{
		entry:  entryStyle,
		key:    keyStyle,
		value:  valueStyle,
		branch: branchStyle,
	}
}

// renderTree renders the document as a tree with box-drawing branches.
func renderTree(doc *acf.Document, color bool) string {
	st := makeTreeStyles(color)

	var b strings.Builder

	for _, e := range doc.Entries {
		b.WriteString(st.entry.Render(e.Name))
		b.WriteString("\n")

		renderEntry(&b, e, "", st)
	}

	return b.String()
}

// renderEntry renders one entry's expressions beneath an already-printed
// name line. prefix holds the accumulated branch indentation.
func renderEntry(b *strings.Builder, e *acf.Entry, prefix string, st treeStyles) {
	i, last := 0, e.Len()-1

	for key, v := range e.Pairs() {
		branch, descend := "├── ", "│   "
		if i == last {
			branch, descend = "└── ", "    "
		}

		b.WriteString(st.branch.Render(prefix + branch))

		switch v.Kind {
		case acf.KindNested:
			b.WriteString(st.entry.Render(key))
			b.WriteString("\n")

			renderEntry(b, v.Nested, prefix+descend, st)

		default:
			b.WriteString(st.key.Render(key))
			b.WriteString(" = ")
			b.WriteString(st.value.Render(v.Scalar))
			b.WriteString("\n")
		}

		i++
	}
}
