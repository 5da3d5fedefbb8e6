package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestQueryNames(t *testing.T) {
	ctx, buf := testContext(t)

	query := &Query{
		Names:     true,
		Predicate: `appid == "440"`,
		Source:    writeSource(t, sampleDoc),
	}

	if err := query.Run(ctx); err != nil {
		t.Fatalf("Query.Run() error = %v", err)
	}

	if buf.String() != "AppState\n" {
		t.Errorf("output = %q, want %q", buf.String(), "AppState\n")
	}
}

func TestQueryPrintsEntries(t *testing.T) {
	ctx, buf := testContext(t)

	query := &Query{
		Predicate: `_name == "UserConfig"`,
		Source:    writeSource(t, sampleDoc),
	}

	if err := query.Run(ctx); err != nil {
		t.Fatalf("Query.Run() error = %v", err)
	}

	if !strings.Contains(buf.String(), "\"language\"\t\t\"english\"") {
		t.Errorf("output = %q, want UserConfig block", buf.String())
	}
}

func TestQueryNoMatches(t *testing.T) {
	ctx, _ := testContext(t)

	query := &Query{
		Predicate: `appid == "999"`,
		Source:    writeSource(t, sampleDoc),
	}

	err := query.Run(ctx)
	if !errors.Is(err, ErrNoEntry) {
		t.Errorf("Query.Run() error = %v, want ErrNoEntry", err)
	}
}

func TestQueryBadPredicate(t *testing.T) {
	ctx, _ := testContext(t)

	query := &Query{
		Predicate: `appid ==`,
		Source:    writeSource(t, sampleDoc),
	}

	if err := query.Run(ctx); err == nil {
		t.Fatal("Query.Run() expected compile error")
	}
}
