package trash

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/logging"
	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/internal/store"
)

func newTestState(t *testing.T, files ...string) *state.State {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("Title\nbody"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	cfg := config.Default()
	cfg.VaultDir = dir
	return &state.State{Config: cfg, Vault: store.New(dir), Logger: logging.Discard()}
}

func execute(t *testing.T, s *state.State, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmdTrash(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestTrashAndRestore(t *testing.T) {
	s := newTestState(t, "ideas/robots.md")
	root := s.Config.VaultDir

	out, err := execute(t, s, "ideas/robots")
	if err != nil {
		t.Fatalf("trash returned error: %v", err)
	}
	if !strings.Contains(out, "Trashed ideas/robots.md") {
		t.Fatalf("unexpected output %q", out)
	}
	if !exists(filepath.Join(root, "trash", "ideas", "robots.md")) {
		t.Fatalf("expected note under the trash directory")
	}

	if _, err := execute(t, s, "restore", "ideas/robots.md"); err != nil {
		t.Fatalf("restore returned error: %v", err)
	}
	if !exists(filepath.Join(root, "ideas", "robots.md")) {
		t.Fatalf("expected note back in the vault")
	}
}

func TestTrashMissingNote(t *testing.T) {
	s := newTestState(t)
	if _, err := execute(t, s, "missing.md"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := execute(t, s); err == nil {
		t.Fatalf("expected an error without a note argument")
	}
}

func TestDeleteAndEmpty(t *testing.T) {
	s := newTestState(t, "trash/a.md", "trash/b.md", "trash/old/c.md", "keep.md")
	root := s.Config.VaultDir

	asked := 0
	answer := false
	prompt := confirm
	confirm = func(string) (bool, error) {
		asked++
		return answer, nil
	}
	t.Cleanup(func() { confirm = prompt })

	if _, err := execute(t, s, "delete", "a.md"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if asked != 1 || !exists(filepath.Join(root, "trash", "a.md")) {
		t.Fatalf("declined delete must keep the note (asked %d)", asked)
	}

	if _, err := execute(t, s, "delete", "-y", "a.md"); err != nil {
		t.Fatalf("delete -y returned error: %v", err)
	}
	if asked != 1 || exists(filepath.Join(root, "trash", "a.md")) {
		t.Fatalf("delete -y must remove the note without asking (asked %d)", asked)
	}

	answer = true
	out, err := execute(t, s, "empty")
	if err != nil {
		t.Fatalf("empty returned error: %v", err)
	}
	if asked != 2 || !strings.Contains(out, "Deleted 2 notes") {
		t.Fatalf("unexpected empty output %q (asked %d)", out, asked)
	}
	if exists(filepath.Join(root, "trash")) || !exists(filepath.Join(root, "keep.md")) {
		t.Fatalf("empty must remove only the trash directory")
	}

	out, err = execute(t, s, "empty", "--yes")
	if err != nil || !strings.Contains(out, "Deleted 0 notes") {
		t.Fatalf("empty on an empty trash: %q, %v", out, err)
	}
}
