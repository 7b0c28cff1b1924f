package fzf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/notelist/internal/excerpt"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/store"
)

// ErrNoSelection is returned when the finder is closed without a pick.
var ErrNoSelection = errors.New("no note selected")

// FuzzyFinder picks a note out of a filtered sequence.
type FuzzyFinder struct {
	vault    *store.Vault
	seq      *filter.Sequence
	excerpts *excerpt.Cache
	Header   string
}

func NewFuzzyFinder(vault *store.Vault, seq *filter.Sequence, header string) *FuzzyFinder {
	return &FuzzyFinder{
		vault:    vault,
		seq:      seq,
		excerpts: excerpt.NewCache(seq.Len()),
		Header:   header,
	}
}

// Run shows the finder, starting from query when it is not empty.
func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	if f.seq.Len() == 0 {
		return note.Note{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.seq.Notes, func(i int) string {
		return f.label(i)
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return note.Note{}, ErrNoSelection
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}

	n, _ := f.seq.At(idx)
	return n, nil
}

// label is the title of the note followed by its tags.
func (f *FuzzyFinder) label(i int) string {
	n, ok := f.seq.At(i)
	if !ok {
		return ""
	}

	title := f.excerpts.Get(n.ID, n.Content, n.Markdown).Title
	if n.Pinned {
		title = "★ " + title
	}

	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags]", title)
	}
	return fmt.Sprintf("%s [Tags: %s]", title, strings.Join(n.Tags, ", "))
}

func (f *FuzzyFinder) renderMarkdownPreview(
	i, w, h int,
) string {
	n, ok := f.seq.At(i)
	if !ok {
		return ""
	}

	if !n.Markdown {
		return n.Content
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(max(w-4, 20)),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return n.Content
	}

	markdown, err := r.Render(n.Content)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}

// Execute opens the picked note in the configured editor and waits for
// terminal editors to exit.
func (f *FuzzyFinder) Execute(n note.Note, editor, extraArgs string) error {
	path, err := f.vault.Path(n.ID)
	if err != nil {
		return err
	}

	launch, err := note.EditorLaunchForPath(path, editor, extraArgs)
	if err != nil {
		return err
	}

	cmd := launch.Cmd
	cmd.Stdin = os.Stdin
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if !launch.Wait {
		return cmd.Start()
	}
	return cmd.Run()
}
