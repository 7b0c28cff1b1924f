package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/notelist/internal/pathutil"
	"github.com/Paintersrp/notelist/internal/state"
)

// AnnotationWatch marks commands that need the vault watcher.
const AnnotationWatch = "notelist/watch"

// ResolveNoteID accepts a note id, a vault-relative path or an absolute path
// inside the vault and returns the note id. The .md extension is optional and
// a trash/ prefix is dropped.
func ResolveNoteID(s *state.State, arg string) (string, error) {
	if s == nil || s.Config == nil {
		return "", fmt.Errorf("state configuration is not initialized")
	}
	vaultDir := filepath.Clean(s.Config.VaultDir)
	if s.Config.VaultDir == "" {
		return "", fmt.Errorf("vault directory is not configured")
	}
	if arg == "" {
		return "", fmt.Errorf("a note argument is required")
	}

	resolved := pathutil.NormalizePath(arg)
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(vaultDir, resolved)
	}

	if err := ensureWithinVault(vaultDir, resolved); err != nil {
		return "", err
	}
	if !pathutil.IsNoteFile(resolved) {
		resolved += ".md"
	}

	id, _, err := pathutil.NoteID(vaultDir, resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve note %q: %w", arg, err)
	}
	return id, nil
}

func ensureWithinVault(vaultDir, resolved string) error {
	rel, err := filepath.Rel(vaultDir, resolved)
	if err != nil {
		return fmt.Errorf("failed to resolve path %q relative to vault %q: %w", resolved, vaultDir, err)
	}

	if rel == "." {
		return fmt.Errorf("path %q is the vault itself", resolved)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q is outside the vault %q", resolved, vaultDir)
	}

	return nil
}
