package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestGetScalar(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{
			name: "top-level key",
			path: []string{"AppState", "appid"},
			want: "440\n",
		},
		{
			name: "nested key",
			path: []string{"AppState", "UserConfig", "language"},
			want: "english\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t)

			get := &Get{Path: tt.path, Source: writeSource(t, sampleDoc)}

			if err := get.Run(ctx); err != nil {
				t.Fatalf("Get.Run() error = %v", err)
			}

			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestGetNestedPrintsBlock(t *testing.T) {
	ctx, buf := testContext(t)

	get := &Get{
		Path:   []string{"AppState", "UserConfig"},
		Source: writeSource(t, sampleDoc),
	}

	if err := get.Run(ctx); err != nil {
		t.Fatalf("Get.Run() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\"UserConfig\"") ||
		!strings.Contains(out, "\"language\"\t\t\"english\"") {
		t.Errorf("output = %q, want canonical UserConfig block", out)
	}
}

func TestGetMissingPath(t *testing.T) {
	tests := []struct {
		name string
		path []string
	}{
		{name: "missing root", path: []string{"NoSuchEntry"}},
		{name: "missing key", path: []string{"AppState", "nope"}},
		{name: "descend through scalar", path: []string{"AppState", "appid", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t)

			get := &Get{Path: tt.path, Source: writeSource(t, sampleDoc)}

			err := get.Run(ctx)
			if !errors.Is(err, ErrNoValue) {
				t.Errorf("Get.Run() error = %v, want ErrNoValue", err)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"appid", "name", "UserConfig", "StateFlags"}

	got := suggest("apid", candidates)
	if len(got) == 0 || got[0] != "appid" {
		t.Errorf("suggest(%q) = %v, want appid first", "apid", got)
	}

	if got := suggest("zzzz", candidates); len(got) != 0 {
		t.Errorf("suggest(%q) = %v, want none", "zzzz", got)
	}

	many := []string{"aa", "ab", "ac", "ad", "ae"}
	if got := suggest("a", many); len(got) > maxSuggestions {
		t.Errorf("suggest returned %d candidates, cap is %d", len(got), maxSuggestions)
	}
}
