package cmd

import (
	"path/filepath"
	"testing"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/state"
)

func TestResolveNoteID(t *testing.T) {
	vaultDir := t.TempDir()

	st := &state.State{Config: &config.Config{VaultDir: vaultDir}}

	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"plain id": {
			input: "note.md",
			want:  "note.md",
		},
		"extension optional": {
			input: "ideas/note",
			want:  "ideas/note.md",
		},
		"absolute inside vault": {
			input: filepath.Join(vaultDir, "ideas", "note.md"),
			want:  "ideas/note.md",
		},
		"trash prefix dropped": {
			input: filepath.Join("trash", "old.md"),
			want:  "old.md",
		},
		"escape attempt": {
			input:   "../evil.md",
			wantErr: true,
		},
		"vault root": {
			input:   vaultDir,
			wantErr: true,
		},
		"empty": {
			input:   "",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveNoteID(st, tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none (id %q)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveNoteID returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	if _, err := ResolveNoteID(nil, "note.md"); err == nil {
		t.Fatal("expected error without state")
	}
}
