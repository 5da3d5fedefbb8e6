package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

// sampleDoc is a small manifest used across command tests.
const sampleDoc = `"AppState"
{
	"appid"		"440"
	"name"		"Team Fortress 2"
	"UserConfig"
	{
		"language"		"english"
	}
}
`

// writeSource writes content to a temp file and returns its path.
func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.acf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context carrying a kong.Context whose output is
// captured in the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	var root struct{}

	parser, err := kong.New(&root,
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx), &buf
}

func TestParseSourceFile(t *testing.T) {
	path := writeSource(t, sampleDoc)

	doc, err := parseSource(context.Background(), path)
	if err != nil {
		t.Fatalf("parseSource() error = %v", err)
	}

	if len(doc.Entries) != 1 || doc.Entries[0].Name != "AppState" {
		t.Errorf("parseSource() entries = %v", doc.Entries)
	}
}

func TestParseSourceMissingFile(t *testing.T) {
	_, err := parseSource(
		context.Background(),
		filepath.Join(t.TempDir(), "absent.acf"),
	)
	if err == nil {
		t.Fatal("parseSource() expected error for missing file")
	}
}

func TestStdoutFallsBackWithoutKongContext(t *testing.T) {
	if got := stdout(context.Background()); got != os.Stdout {
		t.Errorf("stdout() = %v, want os.Stdout", got)
	}
}

func TestStdoutUsesKongContext(t *testing.T) {
	ctx, buf := testContext(t)

	if err := write(stdout(ctx), "hello"); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "hello" {
		t.Errorf("captured output = %q, want %q", buf.String(), "hello")
	}
}
