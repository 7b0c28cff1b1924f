package notes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Paintersrp/notelist/internal/window"
)

const (
	pinnedMarker    = "★ "
	publishedMarker = " ↗"
	ellipsis        = "…"
)

// rowsMeasuredMsg carries laid-out heights for the rows of one cache
// generation.
type rowsMeasuredMsg struct {
	gen     uint64
	heights map[int]int
}

// renderRow lays out a single row at the given width. Its line count is the
// row's height, so View and measurement must both go through here.
func renderRow(row window.Row, mode window.DisplayMode, width int) string {
	width = max(width, 8)

	lines := []string{titleLine(row, width)}
	if mode.ShowsPreview() && row.Preview != "" {
		lines = append(lines, previewLines(row.Preview, mode, width)...)
	}

	if row.Selected {
		for i, line := range lines {
			lines[i] = selectedItemStyle.Render(line)
		}
	}

	// Trailing padding line.
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func titleLine(row window.Row, width int) string {
	prefix := strings.Repeat(" ", runewidth.StringWidth(pinnedMarker))
	if row.Pinned {
		prefix = markerStyle.Render(pinnedMarker)
	}

	suffix := ""
	budget := width - runewidth.StringWidth(pinnedMarker)
	if row.Published {
		suffix = markerStyle.Render(publishedMarker)
		budget -= runewidth.StringWidth(publishedMarker)
	}

	title := runewidth.Truncate(row.Title, max(budget, 1), ellipsis)
	return prefix + rowTitleStyle.Render(title) + suffix
}

func previewLines(preview string, mode window.DisplayMode, width int) []string {
	indent := runewidth.StringWidth(pinnedMarker)
	inner := max(width-indent, 1)
	pad := strings.Repeat(" ", indent)

	var raw []string
	if mode == window.Expanded {
		wrapped := lipgloss.NewStyle().Width(inner).Render(preview)
		raw = strings.Split(wrapped, "\n")
	} else {
		for _, line := range strings.Split(preview, "\n") {
			raw = append(raw, runewidth.Truncate(line, inner, ellipsis))
		}
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = pad + rowPreviewStyle.Render(line)
	}
	return lines
}

// measureRows lays the rows out off the update loop and reports their
// heights back for generation gen.
func measureRows(gen uint64, rows []window.Row, mode window.DisplayMode, width int) tea.Cmd {
	if len(rows) == 0 {
		return nil
	}
	return func() tea.Msg {
		measured := make(map[int]int, len(rows))
		for _, r := range rows {
			measured[r.Index] = lipgloss.Height(renderRow(r, mode, width))
		}
		return rowsMeasuredMsg{gen: gen, heights: measured}
	}
}

// cropLines keeps height lines of block starting at offset.
func cropLines(block string, offset, height int) string {
	lines := strings.Split(block, "\n")
	offset = min(max(offset, 0), len(lines))
	lines = lines[offset:]
	if height >= 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
