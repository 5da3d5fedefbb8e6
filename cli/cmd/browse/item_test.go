package browse

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acfkit/acf"
	"github.com/acfkit/acf/log"
)

const sampleDoc = `"AppState"
{
	"appid"		"440"
	"name"		"Team Fortress 2"
	"UserConfig"
	{
		"language"		"english"
	}
}
"LibraryState"
{
	"path"		"/opt/steam"
}
`

func parseDoc(t *testing.T) *acf.Document {
	t.Helper()

	doc, err := acf.ParseString(context.Background(), sampleDoc)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	return doc
}

func TestLevelItemsRoot(t *testing.T) {
	doc := parseDoc(t)

	items := levelItems(doc, nil)
	if len(items) != 2 {
		t.Fatalf("levelItems() = %d items, want 2", len(items))
	}

	if items[0].key != "AppState" || items[0].nested == nil {
		t.Errorf("items[0] = %+v, want nested AppState", items[0])
	}

	if items[1].key != "LibraryState" {
		t.Errorf("items[1].key = %q, want LibraryState", items[1].key)
	}
}

func TestLevelItemsNested(t *testing.T) {
	doc := parseDoc(t)

	root := levelItems(doc, nil)
	items := levelItems(doc, []*acf.Entry{root[0].nested})

	if len(items) != 3 {
		t.Fatalf("levelItems() = %d items, want 3", len(items))
	}

	if items[0].key != "appid" || items[0].scalar != "440" {
		t.Errorf("items[0] = %+v, want appid=440", items[0])
	}

	if items[2].key != "UserConfig" || items[2].nested == nil {
		t.Errorf("items[2] = %+v, want nested UserConfig", items[2])
	}
}

func TestFilterItems(t *testing.T) {
	items := []item{
		{key: "appid", scalar: "440"},
		{key: "name", scalar: "x"},
		{key: "UserConfig", nested: &acf.Entry{}},
	}

	if got := filterItems(items, ""); len(got) != len(items) {
		t.Errorf("empty filter narrowed items to %d", len(got))
	}

	got := filterItems(items, "apd")
	if len(got) != 1 || got[0].key != "appid" {
		t.Errorf("filterItems(apd) = %+v, want appid", got)
	}

	if got := filterItems(items, "zzz"); len(got) != 0 {
		t.Errorf("filterItems(zzz) = %+v, want none", got)
	}
}

func TestModelNavigation(t *testing.T) {
	doc := parseDoc(t)
	m := newModel(context.Background(), doc, log.Default())

	// Descend into AppState.
	next, _ := m.descend()
	if len(next.stack) != 1 || next.stack[0].Name != "AppState" {
		t.Fatalf("descend() stack = %+v, want [AppState]", next.stack)
	}

	if len(next.items) != 3 {
		t.Errorf("descend() items = %d, want 3", len(next.items))
	}

	// Ascend back to the root.
	next, _ = next.ascend()
	if len(next.stack) != 0 {
		t.Errorf("ascend() stack = %+v, want empty", next.stack)
	}

	// Ascend at the root quits.
	next, cmd := next.ascend()
	if !next.quitting || cmd == nil {
		t.Error("ascend() at root should quit")
	}
}

func TestModelDescendIntoScalarIsNoop(t *testing.T) {
	doc := parseDoc(t)
	m := newModel(context.Background(), doc, log.Default())

	m, _ = m.descend() // AppState
	m.cursor = 0       // appid (scalar)

	next, _ := m.descend()
	if len(next.stack) != 1 {
		t.Errorf("descend() into scalar changed stack: %+v", next.stack)
	}
}

func TestModelQuitKeys(t *testing.T) {
	doc := parseDoc(t)
	m := newModel(context.Background(), doc, log.Default())

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.quitting || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestViewShowsBreadcrumbAndItems(t *testing.T) {
	doc := parseDoc(t)
	m := newModel(context.Background(), doc, log.Default())

	view := m.View()
	if !strings.Contains(view, "(document)") {
		t.Errorf("root view missing breadcrumb:\n%s", view)
	}

	m, _ = m.descend()

	view = m.View()
	if !strings.Contains(view, "AppState") {
		t.Errorf("nested view missing breadcrumb:\n%s", view)
	}
}

func TestRunNilDocument(t *testing.T) {
	err := Run(context.Background(), nil, log.Default())
	if err == nil {
		t.Fatal("Run(nil) expected ErrNoDocument")
	}
}
