// Package store reads and updates notes kept as markdown files in a vault
// directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Paintersrp/notelist/internal/logging"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/pathutil"
)

var (
	ErrNotFound = errors.New("note not found")
	// ErrConflict is returned when a move would overwrite another note.
	ErrConflict = errors.New("a note with this id already exists there")
)

type Option func(*Vault)

// WithMarkdown marks every loaded note as markdown regardless of its front
// matter.
func WithMarkdown(all bool) Option {
	return func(v *Vault) { v.markdownAll = all }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(v *Vault) { v.log = l }
}

// Vault is safe for concurrent use. File operations are serialized.
type Vault struct {
	mu          sync.Mutex
	root        string
	markdownAll bool
	revision    uint64
	log         logrus.FieldLogger
}

func New(root string, opts ...Option) *Vault {
	v := &Vault{root: pathutil.NormalizePath(root), log: logging.Discard()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vault) Root() string { return v.root }

// Load reads every note in the vault. Unreadable files are logged and
// skipped so one bad note never hides the rest.
func (v *Vault) Load(ctx context.Context) (note.Collection, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var notes []note.Note
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != v.root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !pathutil.IsNoteFile(name) {
			return nil
		}

		n, err := v.read(path)
		if err != nil {
			v.log.WithError(err).WithField("path", path).Warn("skipping unreadable note")
			return nil
		}
		notes = append(notes, n)
		return nil
	})
	if err != nil {
		return note.Collection{}, fmt.Errorf("load vault %s: %w", v.root, err)
	}

	if unique := note.Unique(notes); len(unique) != len(notes) {
		v.log.WithField("shadowed", len(notes)-len(unique)).Info("trashed notes hidden by live notes with the same id")
		notes = unique
	}

	v.revision++
	v.log.WithFields(logrus.Fields{
		"notes":    len(notes),
		"revision": v.revision,
	}).Debug("vault loaded")

	return note.Collection{Notes: notes, Loaded: true, Revision: v.revision}, nil
}

func (v *Vault) read(path string) (note.Note, error) {
	info, err := os.Stat(path)
	if err != nil {
		return note.Note{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return note.Note{}, err
	}

	id, trashed, err := pathutil.NoteID(v.root, path)
	if err != nil {
		return note.Note{}, err
	}

	header, body, _ := splitFrontMatter(content)
	fm, err := parseFrontMatter(header)
	if err != nil {
		v.log.WithError(err).WithField("id", id).Debug("ignoring front matter")
	}

	mtime := info.ModTime()
	return note.Note{
		ID:         id,
		Content:    string(body),
		Tags:       fm.Tags,
		Pinned:     fm.Pinned,
		Markdown:   v.markdownAll || fm.Markdown,
		Trashed:    trashed,
		PublishURL: fm.PublishURL,
		ModifiedAt: parseDate(fm.Modified, mtime),
		CreatedAt:  parseDate(fm.Created, mtime),
	}, nil
}

// Path returns the file currently holding the note.
func (v *Vault) Path(id string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	path, _, err := v.resolve(id)
	return path, err
}

// resolve prefers the live copy when a note exists both in and out of the
// trash.
func (v *Vault) resolve(id string) (string, bool, error) {
	for _, trashed := range []bool{false, true} {
		path := pathutil.NotePath(v.root, id, trashed)
		if _, err := os.Stat(path); err == nil {
			return path, trashed, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("stat %s: %w", id, err)
		}
	}
	return "", false, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// SetPinned records the pinned flag in the note's front matter.
func (v *Vault) SetPinned(id string, pinned bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	path, _, err := v.resolve(id)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("pin %s: %w", id, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pin %s: %w", id, err)
	}

	updated, err := setFrontMatterField(content, "pinned", pinned)
	if err != nil {
		return fmt.Errorf("pin %s: %w", id, err)
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return fmt.Errorf("pin %s: %w", id, err)
	}

	v.log.WithFields(logrus.Fields{"id": id, "pinned": pinned}).Info("pin updated")
	return nil
}

// Trash moves a note under the trash directory, keeping its relative path.
func (v *Vault) Trash(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.move(id, false)
}

// Restore moves a trashed note back to where it was trashed from.
func (v *Vault) Restore(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.move(id, true)
}

func (v *Vault) move(id string, fromTrash bool) error {
	from := pathutil.NotePath(v.root, id, fromTrash)
	to := pathutil.NotePath(v.root, id, !fromTrash)

	if _, err := os.Stat(from); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if _, err := os.Stat(to); err == nil {
		return fmt.Errorf("move %s: %w", id, ErrConflict)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("move %s: %w", id, err)
	}
	if err := os.MkdirAll(filepath.Dir(to), os.ModePerm); err != nil {
		return fmt.Errorf("move %s: %w", id, err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("move %s: %w", id, err)
	}

	v.log.WithFields(logrus.Fields{"id": id, "trashed": !fromTrash}).Info("note moved")
	return nil
}

// DeleteForever removes the note file, trashed copy first.
func (v *Vault) DeleteForever(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	path := pathutil.NotePath(v.root, id, true)
	if _, err := os.Stat(path); err != nil {
		path, _, err = v.resolve(id)
		if err != nil {
			return err
		}
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	v.log.WithField("id", id).Info("note deleted")
	return nil
}

// EmptyTrash deletes the trash directory and reports how many notes it held.
func (v *Vault) EmptyTrash() (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dir := filepath.Join(v.root, pathutil.TrashDir)
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && pathutil.IsNoteFile(path) {
			count++
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("empty trash: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("empty trash: %w", err)
	}

	v.log.WithField("notes", count).Info("trash emptied")
	return count, nil
}
