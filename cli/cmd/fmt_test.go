package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNativeRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		contains string
	}{
		{
			name:     "simple entry",
			input:    `"root" { "a" "1" }`,
			contains: "\"a\"\t\t\"1\"",
		},
		{
			name:     "bare tokens are quoted",
			input:    "root { key value }",
			contains: "\"key\"\t\t\"value\"",
		},
		{
			name:     "empty input",
			input:    "",
			contains: "",
		},
		{
			name:    "unclosed entry",
			input:   `"root" {`,
			wantErr: true,
		},
		{
			name:    "stray close brace",
			input:   "}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t)

			native := &Native{Source: writeSource(t, tt.input)}

			err := native.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output = %q, want substring %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestJSONRun(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &JSON{Indent: 2, Source: writeSource(t, sampleDoc)}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("JSON.Run() error = %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if decoded["AppState"]["appid"] != "440" {
		t.Errorf("AppState.appid = %v, want %q", decoded["AppState"]["appid"], "440")
	}
}

func TestYAMLRun(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &YAML{Indent: 2, Source: writeSource(t, sampleDoc)}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("YAML.Run() error = %v", err)
	}

	for _, want := range []string{"AppState:", "appid:", "language:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestTreeRun(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &Tree{Plain: true, Source: writeSource(t, sampleDoc)}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Tree.Run() error = %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"AppState",
		"├── appid = 440",
		"└── UserConfig",
		"    └── language = english",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTreePlainHasNoEscapes(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &Tree{Plain: true, Source: writeSource(t, sampleDoc)}
	if err := cmd.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("plain output contains ANSI escapes:\n%q", buf.String())
	}
}
