// Package pathutil maps between vault file paths and note ids.
package pathutil

import (
	"path/filepath"
	"strings"
)

// TrashDir is the vault subdirectory that holds trashed notes. A trashed note
// keeps the relative path it had before it was moved.
const TrashDir = "trash"

// NormalizePath converts Windows-style separators to the current platform's
// separator and cleans the result.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns target relative to vaultDir using forward slashes.
func VaultRelative(vaultDir, target string) (string, error) {
	rel, err := filepath.Rel(NormalizePath(vaultDir), NormalizePath(target))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// NoteID returns the id of the note stored at path and whether the file sits
// in the trash. Ids never include the trash prefix, so a note keeps its id
// when it is trashed or restored.
func NoteID(vaultDir, path string) (id string, trashed bool, err error) {
	rel, err := VaultRelative(vaultDir, path)
	if err != nil {
		return "", false, err
	}
	rel = strings.TrimPrefix(rel, "./")

	if after, ok := strings.CutPrefix(rel, TrashDir+"/"); ok {
		return after, true, nil
	}
	return rel, false, nil
}

// NotePath is the inverse of NoteID.
func NotePath(vaultDir, id string, trashed bool) string {
	parts := []string{NormalizePath(vaultDir)}
	if trashed {
		parts = append(parts, TrashDir)
	}
	parts = append(parts, filepath.FromSlash(id))
	return filepath.Join(parts...)
}

// IsNoteFile reports whether the path names a markdown note.
func IsNoteFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
