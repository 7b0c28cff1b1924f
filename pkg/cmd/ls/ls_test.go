package ls

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/logging"
	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/internal/store"
	"github.com/Paintersrp/notelist/internal/window"
)

func TestPrintRows(t *testing.T) {
	rows := []window.Row{
		{ID: "a.md", Title: "Alpha", Pinned: true},
		{ID: "b.md", Title: "Beta", Preview: "first\nsecond", Published: true},
	}

	var condensed bytes.Buffer
	printRows(&condensed, rows, window.Condensed, 30)
	lines := strings.Split(strings.TrimRight(condensed.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per row, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "* Alpha") || !strings.HasSuffix(lines[0], "  a.md") {
		t.Fatalf("unexpected pinned row %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "b.md (published)") {
		t.Fatalf("unexpected published row %q", lines[1])
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w != 30 {
			t.Fatalf("expected rows padded to 30 cells, got %d for %q", w, line)
		}
	}

	var comfy bytes.Buffer
	printRows(&comfy, rows, window.Comfy, 30)
	if !strings.Contains(comfy.String(), "\n\n") || !strings.Contains(comfy.String(), "    first\n    second\n") {
		t.Fatalf("expected spaced rows with previews, got:\n%s", comfy.String())
	}
}

func TestLsCommand(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.md": "---\npinned: true\n---\nAlpha\nbody",
		"b.md": "Beta\nmore",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	cfg := config.Default()
	cfg.VaultDir = dir
	cfg.Display = window.Condensed.String()
	s := &state.State{Config: cfg, Vault: store.New(dir), Logger: logging.Discard()}

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-n", "1"}, []string{"* Alpha"}},
		{[]string{}, []string{"* Alpha", "  Beta"}},
		{[]string{"-q", "more"}, []string{"  Beta"}},
		{[]string{"-q", "nothing-matches"}, []string{window.EmptyPlaceholder}},
	}

	for _, tt := range tests {
		cmd := NewCmdLs(s)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("ls %v returned error: %v", tt.args, err)
		}

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != len(tt.want) {
			t.Fatalf("ls %v: expected %d lines, got %q", tt.args, len(tt.want), lines)
		}
		for i, prefix := range tt.want {
			if !strings.HasPrefix(lines[i], prefix) {
				t.Fatalf("ls %v: line %d expected prefix %q, got %q", tt.args, i, prefix, lines[i])
			}
		}
	}
}
