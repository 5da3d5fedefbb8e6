package browse

import (
	"github.com/sahilm/fuzzy"

	"github.com/acfkit/acf"
)

// item is one selectable row: a root entry or a key inside the current entry.
// nested is non-nil when the row can be descended into.
type item struct {
	key    string
	scalar string
	nested *acf.Entry
}

// levelItems lists the rows visible at the level selected by stack. An empty
// stack selects the document's root entries.
func levelItems(doc *acf.Document, stack []*acf.Entry) []item {
	if len(stack) == 0 {
		items := make([]item, 0, len(doc.Entries))
		for e := range doc.All() {
			items = append(items, item{key: e.Name, nested: e})
		}

		return items
	}

	current := stack[len(stack)-1]
	items := make([]item, 0, current.Len())

	for key, v := range current.Pairs() {
		switch v.Kind {
		case acf.KindNested:
			items = append(items, item{key: key, nested: v.Nested})
		default:
			items = append(items, item{key: key, scalar: v.Scalar})
		}
	}

	return items
}

// itemSource adapts []item to the fuzzy matcher without copying keys.
type itemSource []item

func (s itemSource) String(i int) string { return s[i].key }
func (s itemSource) Len() int            { return len(s) }

// filterItems narrows items to those fuzzy-matching the filter text, ranked
// by match score. An empty filter returns items unchanged in source order.
func filterItems(items []item, filter string) []item {
	if filter == "" {
		return items
	}

	matches := fuzzy.FindFrom(filter, itemSource(items))
	filtered := make([]item, len(matches))

	for i, m := range matches {
		filtered[i] = items[m.Index]
	}

	return filtered
}

// renderItem renders one row, highlighting the selection.
func renderItem(it item, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}

	if it.nested != nil {
		return marker + entryStyle.Render(it.key+"/")
	}

	return marker + keyStyle.Render(it.key) + " = " + valueStyle.Render(it.scalar)
}
