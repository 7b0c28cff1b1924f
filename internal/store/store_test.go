package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func writeNote(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "plain.md", "Plain note\nbody")
	writeNote(t, root, "work/todo.md", strings.Join([]string{
		"---",
		"tags: [work, urgent]",
		"pinned: true",
		"publish_url: https://example.com/p/todo",
		"modified: 2024-02-03 10:00",
		"created: March 1, 2023",
		"---",
		"Todo",
		"ship it",
	}, "\n"))
	writeNote(t, root, "trash/old.md", "Old")
	writeNote(t, root, ".hidden/secret.md", "hidden")
	writeNote(t, root, "notes.txt", "not a note")

	v := New(root)
	c, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Loaded || c.Revision != 1 {
		t.Fatalf("unexpected collection state %+v", c)
	}

	var ids []string
	for _, n := range c.Notes {
		ids = append(ids, n.ID)
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"old.md", "plain.md", "work/todo.md"}) {
		t.Fatalf("unexpected ids %v", ids)
	}

	todo, _ := c.Find("work/todo.md")
	if !todo.Pinned || !todo.Published() || !slices.Equal(todo.Tags, []string{"work", "urgent"}) {
		t.Fatalf("front matter not applied: %+v", todo)
	}
	if todo.Content != "Todo\nship it" {
		t.Fatalf("expected front matter stripped from content, got %q", todo.Content)
	}
	if want := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC); !todo.ModifiedAt.Equal(want) {
		t.Fatalf("expected modified %v, got %v", want, todo.ModifiedAt)
	}
	if todo.CreatedAt.Year() != 2023 || todo.CreatedAt.Month() != time.March {
		t.Fatalf("unexpected created date %v", todo.CreatedAt)
	}
	if todo.Markdown {
		t.Fatal("markdown flag should come from front matter")
	}

	old, _ := c.Find("old.md")
	if !old.Trashed {
		t.Fatal("expected note under trash/ to be trashed")
	}

	again, err := New(root, WithMarkdown(true)).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if plain, _ := again.Find("plain.md"); !plain.Markdown {
		t.Fatal("WithMarkdown should mark every note")
	}
}

func TestLoadCancelled(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(root).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTrashAndRestore(t *testing.T) {
	root := t.TempDir()
	live := writeNote(t, root, "work/todo.md", "Todo")
	trashed := filepath.Join(root, "trash", "work", "todo.md")

	v := New(root)
	if err := v.Trash("work/todo.md"); err != nil {
		t.Fatalf("trash: %v", err)
	}
	if exists(live) || !exists(trashed) {
		t.Fatal("expected note moved into trash")
	}

	if err := v.Restore("work/todo.md"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !exists(live) || exists(trashed) {
		t.Fatal("expected note moved back")
	}

	if err := v.Restore("work/todo.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound restoring a live note, got %v", err)
	}
	if err := v.Trash("missing.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLiveNoteOwnsSharedID(t *testing.T) {
	root := t.TempDir()
	live := writeNote(t, root, "zeta.md", "Zeta again")
	trashed := writeNote(t, root, "trash/zeta.md", "Zeta")
	writeNote(t, root, "trash/old.md", "Old")

	v := New(root)
	c, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var zetas []bool
	for _, n := range c.Notes {
		if n.ID == "zeta.md" {
			zetas = append(zetas, n.Trashed)
		}
	}
	if !slices.Equal(zetas, []bool{false}) {
		t.Fatalf("expected only the live zeta.md, got trashed flags %v", zetas)
	}
	if n, ok := c.Find("old.md"); !ok || !n.Trashed {
		t.Fatalf("expected the unshadowed trashed note to stay, got %+v %v", n, ok)
	}

	if err := v.Trash("zeta.md"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict trashing over an existing trashed note, got %v", err)
	}
	if err := v.Restore("zeta.md"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict restoring over a live note, got %v", err)
	}

	tests := map[string]string{live: "Zeta again", trashed: "Zeta"}
	for path, want := range tests {
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(got) != want {
			t.Fatalf("%s: expected %q, got %q", path, want, got)
		}
	}
}

func TestDeleteForeverAndEmptyTrash(t *testing.T) {
	root := t.TempDir()
	a := writeNote(t, root, "a.md", "a")
	writeNote(t, root, "trash/b.md", "b")
	writeNote(t, root, "trash/sub/c.md", "c")

	v := New(root)
	if err := v.DeleteForever("a.md"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if exists(a) {
		t.Fatal("note still on disk")
	}
	if err := v.DeleteForever("a.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	n, err := v.EmptyTrash()
	if err != nil {
		t.Fatalf("empty trash: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 notes removed, got %d", n)
	}
	if exists(filepath.Join(root, "trash")) {
		t.Fatal("trash directory still present")
	}

	if n, err := v.EmptyTrash(); err != nil || n != 0 {
		t.Fatalf("emptying an empty trash: %d %v", n, err)
	}
}

func TestSetPinned(t *testing.T) {
	root := t.TempDir()
	path := writeNote(t, root, "a.md", "---\ntitle: Keep me\ntags: [x]\n---\nBody\n")
	bare := writeNote(t, root, "b.md", "Bare body\n")

	v := New(root)
	if err := v.SetPinned("a.md", true); err != nil {
		t.Fatalf("pin: %v", err)
	}
	if err := v.SetPinned("b.md", true); err != nil {
		t.Fatalf("pin bare: %v", err)
	}

	c, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, id := range []string{"a.md", "b.md"} {
		if n, _ := c.Find(id); !n.Pinned {
			t.Fatalf("%s not pinned", id)
		}
	}

	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "title: Keep me") || !strings.HasSuffix(string(content), "---\nBody\n") {
		t.Fatalf("unrelated content changed:\n%s", content)
	}

	if err := v.SetPinned("b.md", false); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	content, _ = os.ReadFile(bare)
	if string(content) != "Bare body\n" {
		t.Fatalf("expected header removed once empty, got %q", content)
	}

	if err := v.SetPinned("missing.md", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		header string
		body   string
	}{
		{"no header", "just text", "", "just text"},
		{"header", "---\na: 1\n---\nbody", "a: 1", "body"},
		{"empty header", "---\n---\nbody", "", "body"},
		{"crlf", "---\r\na: 1\r\n---\r\nbody", "a: 1", "body"},
		{"header only", "---\na: 1\n---", "a: 1", ""},
		{"dashes later", "text\n---\na: 1\n---\n", "", "text\n---\na: 1\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, _ := splitFrontMatter([]byte(tt.in))
			if string(header) != tt.header || string(body) != tt.body {
				t.Fatalf("expected (%q, %q), got (%q, %q)", tt.header, tt.body, header, body)
			}
		})
	}
}
