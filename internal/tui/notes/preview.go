package notes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/notelist/internal/note"
)

const noNoteOpen = "No note open"

type previewRenderedMsg struct {
	id      string
	content string
}

// glamourStyle picks the standard glamour style matching the terminal
// background.
func glamourStyle() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func renderPreview(n note.Note, width int, style string) tea.Cmd {
	return func() tea.Msg {
		return previewRenderedMsg{id: n.ID, content: renderNote(n, width, style)}
	}
}

// renderNote renders markdown notes with glamour and wraps plain notes as
// text.
func renderNote(n note.Note, width int, style string) string {
	width = max(width, 10)
	if !n.Markdown {
		return textStyle.Copy().Width(width).Render(n.Content)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return textStyle.Copy().Width(width).Render(n.Content)
	}

	out, err := r.Render(n.Content)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}
