// Package notes is the interactive note list.
package notes

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Paintersrp/notelist/internal/app"
	"github.com/Paintersrp/notelist/internal/debounce"
	"github.com/Paintersrp/notelist/internal/excerpt"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/internal/window"
)

// headerLines is the title and search rows above the list; footerLines the
// status and help rows below it.
const (
	headerLines = 2
	footerLines = 2
)

type NoteListModel struct {
	state     *state.State
	app       app.State
	renderer  *window.Renderer
	excerpts  *excerpt.Cache
	scheduler *debounce.Scheduler
	fired     chan struct{}
	search    textinput.Model
	help      help.Model
	keys      *listKeyMap
	log       logrus.FieldLogger

	preview      string
	previewID    string
	previewStyle string
	status       string
	follow       bool
	width        int
	height       int
}

// NewNoteListModel builds the list over s. Extra options are passed to the
// debounce scheduler after the configured delays.
func NewNoteListModel(s *state.State, opts ...debounce.Option) *NoteListModel {
	cfg := s.Config
	log := s.Logger.WithField("component", "notes")
	fired := make(chan struct{}, 1)

	opts = append([]debounce.Option{
		debounce.WithDelays(cfg.Debounce.Short, cfg.Debounce.Long),
		debounce.WithLogger(log),
	}, opts...)

	scheduler := debounce.New(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}, opts...)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = searchPromptStyle
	ti.Placeholder = "Search notes"
	ti.CharLimit = 256

	return &NoteListModel{
		state:        s,
		app:          app.NewState(cfg.DisplayMode(), cfg.SortOptions()),
		renderer:     window.NewRenderer(cfg.DisplayMode(), cfg.Overscan),
		excerpts:     excerpt.NewCache(cfg.ExcerptCacheSize),
		scheduler:    scheduler,
		fired:        fired,
		search:       ti,
		help:         help.New(),
		keys:         newListKeyMap(),
		log:          log,
		previewStyle: "dark",
	}
}

func (m *NoteListModel) Init() tea.Cmd {
	return tea.Batch(
		loadNotes(m.state.Vault, false),
		waitForRecompute(m.fired),
		m.state.Watcher.Start(),
	)
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(m.listWidth()-lipgloss.Width(m.search.Prompt)-1, 1)
		m.help.Width = m.innerWidth()
		m.renderer.SetWidth(m.listWidth())
		cmds = append(cmds, m.refreshPreview())

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case recomputeMsg:
		next, effects := app.Recompute(m.app)
		m.app = next
		m.follow = true
		m.log.WithFields(logrus.Fields{
			"rows":     m.app.Sequence.Len(),
			"revision": m.app.Collection.Revision,
		}).Debug("sequence committed")
		cmds = append(cmds, m.run(effects), waitForRecompute(m.fired))

	case notesLoadedMsg:
		if msg.remote {
			cmds = append(cmds, m.dispatch(app.NoteUpdatedRemotely{Collection: msg.collection}))
		} else {
			cmds = append(cmds, m.dispatch(app.NotesLoaded{Collection: msg.collection}))
		}
		cmds = append(cmds, m.refreshPreview())

	case loadFailedMsg:
		m.setError("Error loading notes", msg.err)

	case storeDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("%s %s failed", msg.op, msg.id), msg.err)
			cmds = append(cmds, loadNotes(m.state.Vault, true))
			break
		}
		m.status = statusStyle(msg.String())

	case rowsMeasuredMsg:
		m.renderer.Measure(msg.gen, msg.heights)

	case previewRenderedMsg:
		if msg.id == m.previewID {
			m.preview = msg.content
		}

	case note.EditorClosedMsg:
		if msg.Err != nil {
			m.setError("Error opening editor", msg.Err)
		}
		cmds = append(cmds, loadNotes(m.state.Vault, true))

	case state.VaultNoteChangedMsg:
		cmds = append(cmds, loadNotes(m.state.Vault, true), m.state.Watcher.Start())

	case state.VaultWatcherErrMsg:
		m.setError("Watcher error", msg.Err)
		cmds = append(cmds, m.state.Watcher.Start())

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.layout())
	return m, tea.Batch(cmds...)
}

func (m *NoteListModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	m.status = ""

	// Note navigation is handled before the search field sees the key.
	switch {
	case key.Matches(msg, m.keys.selectPrevious):
		m.follow = true
		return m.dispatch(app.SelectPrevious{}), false
	case key.Matches(msg, m.keys.selectNext):
		m.follow = true
		return m.dispatch(app.SelectNext{}), false
	case msg.String() == "ctrl+c":
		m.shutdown()
		return nil, true
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg), false
	}
	return m.handleListKey(msg)
}

func (m *NoteListModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.clearSearch):
		if m.search.Value() == "" {
			m.search.Blur()
			return nil
		}
		m.search.SetValue("")
		return m.dispatch(app.SetQuery{Query: ""})

	case key.Matches(msg, m.keys.submitSearch):
		m.search.Blur()
		return nil

	case msg.Type == tea.KeyUp:
		return m.moveCursor(-1)

	case msg.Type == tea.KeyDown:
		return m.moveCursor(1)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return tea.Batch(cmd, m.dispatch(app.SetQuery{Query: m.search.Value()}))
}

func (m *NoteListModel) handleListKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.shutdown()
		return nil, true

	case key.Matches(msg, m.keys.cursorUp):
		return m.moveCursor(-1), false

	case key.Matches(msg, m.keys.cursorDown):
		return m.moveCursor(1), false

	case key.Matches(msg, m.keys.pageUp):
		m.renderer.ScrollBy(-m.listHeight())

	case key.Matches(msg, m.keys.pageDown):
		m.renderer.ScrollBy(m.listHeight())

	case key.Matches(msg, m.keys.openNote):
		return m.openInEditor(), false

	case key.Matches(msg, m.keys.closeNote):
		return m.dispatch(app.DeselectNote{}), false

	case key.Matches(msg, m.keys.pin):
		if n, ok := m.target(); ok {
			return m.dispatch(app.Pin{ID: n.ID, Pinned: !n.Pinned}), false
		}

	case key.Matches(msg, m.keys.trash):
		if n, ok := m.target(); ok {
			if n.Trashed {
				return m.dispatch(app.DeleteForever{ID: n.ID}), false
			}
			return m.dispatch(app.Trash{ID: n.ID}), false
		}

	case key.Matches(msg, m.keys.restore):
		if n, ok := m.target(); ok {
			return m.dispatch(app.Restore{ID: n.ID}), false
		}

	case key.Matches(msg, m.keys.emptyTrash):
		if !m.app.Criteria.ShowTrash {
			m.status = statusStyle("Open the trash (T) to empty it")
			break
		}
		return m.dispatch(app.EmptyTrash{}), false

	case key.Matches(msg, m.keys.cycleTag):
		return m.dispatch(m.nextTag()), false

	case key.Matches(msg, m.keys.toggleTrash):
		return m.dispatch(app.SetTrashView{Show: !m.app.Criteria.ShowTrash}), false

	case key.Matches(msg, m.keys.allNotes):
		return m.dispatch(app.ShowAllNotes{}), false

	case key.Matches(msg, m.keys.toggleDisplay):
		m.follow = true
		return m.dispatch(app.SetDisplay{Mode: m.app.Display.Next()}), false

	case key.Matches(msg, m.keys.cycleSort):
		opts := m.app.Sort
		opts.Mode = opts.Mode.Next()
		return m.dispatch(app.SetSort{Options: opts}), false

	case key.Matches(msg, m.keys.reverseSort):
		opts := m.app.Sort
		opts.Reversed = !opts.Reversed
		return m.dispatch(app.SetSort{Options: opts}), false

	case key.Matches(msg, m.keys.copyURL):
		m.copyPublishURL()

	case key.Matches(msg, m.keys.focusSearch):
		return m.search.Focus(), false

	case key.Matches(msg, m.keys.clearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m.dispatch(app.SetQuery{Query: ""}), false
		}

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	return nil, false
}

// dispatch reduces cmd into the list state and runs the resulting effects.
func (m *NoteListModel) dispatch(cmd app.Command) tea.Cmd {
	if cmd == nil {
		return nil
	}
	next, effects := app.Reduce(m.app, cmd)
	m.app = next
	return m.run(effects)
}

func (m *NoteListModel) run(effects []app.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case app.Schedule:
			if err := m.scheduler.Notify(e.Event); err != nil {
				m.log.WithError(err).WithField("event", e.Event.String()).Warn("recompute not scheduled")
			}
		case app.OpenNote:
			m.previewID = e.ID
			m.preview = ""
			cmds = append(cmds, m.refreshPreview())
		case app.CloseNote:
			if m.previewID == e.ID {
				m.previewID = ""
				m.preview = ""
			}
		default:
			cmds = append(cmds, persist(m.state.Vault, e))
		}
	}
	return tea.Batch(cmds...)
}

// layout syncs the renderer with the committed sequence and asks for the
// visible rows that have not been measured yet.
func (m *NoteListModel) layout() tea.Cmd {
	selectedContent := ""
	if n, ok := m.app.SelectedNote(); ok {
		selectedContent = n.Content
	}
	m.renderer.Sync(m.app.Sequence, m.app.Display, selectedContent)

	if m.follow {
		m.renderer.EnsureVisible(m.app.Cursor(), m.listHeight())
		m.follow = false
	}

	rng := m.renderer.Visible(m.listHeight())
	rows := m.renderer.Rows(m.app.Sequence, rng, m.selectedID(), m.excerpts)

	cache := m.renderer.Heights()
	pending := make([]window.Row, 0, len(rows))
	for _, r := range rows {
		if !cache.Measured(r.Index) {
			pending = append(pending, r)
		}
	}
	return measureRows(m.renderer.Generation(), pending, m.renderer.Mode(), m.renderer.Width())
}

// moveCursor selects the row next to the cursor. Without a selection the
// cursor row itself is selected.
func (m *NoteListModel) moveCursor(delta int) tea.Cmd {
	m.follow = true
	if _, ok := m.app.Selection.Selected(); ok {
		if delta < 0 {
			return m.dispatch(app.SelectPrevious{})
		}
		return m.dispatch(app.SelectNext{})
	}

	n, ok := m.app.Sequence.At(m.app.Cursor())
	if !ok {
		return nil
	}
	return m.dispatch(app.SelectNote{ID: n.ID})
}

// target is the note row actions apply to: the open note, else the row under
// the cursor.
func (m *NoteListModel) target() (note.Note, bool) {
	if n, ok := m.app.SelectedNote(); ok {
		return n, true
	}
	return m.app.Sequence.At(m.app.Cursor())
}

func (m *NoteListModel) selectedID() string {
	id, _ := m.app.Selection.Selected()
	return id
}

// nextTag cycles through the known tags and back to all notes.
func (m *NoteListModel) nextTag() app.Command {
	tags := m.app.Tags
	if len(tags) == 0 {
		return nil
	}

	current := ""
	if len(m.app.Criteria.Tags) == 1 {
		current = m.app.Criteria.Tags[0]
	}

	i := slices.Index(tags, current)
	if i == len(tags)-1 {
		return app.ShowAllNotes{}
	}
	return app.SetTag{Tag: tags[i+1]}
}

func (m *NoteListModel) openInEditor() tea.Cmd {
	n, ok := m.target()
	if !ok {
		return nil
	}

	path, err := m.state.Vault.Path(n.ID)
	if err != nil {
		m.setError("Error opening note", err)
		return nil
	}

	cfg := m.state.Config
	return note.BubbleteaOpen(n.ID, path, cfg.Editor, cfg.EditorArgs)
}

func (m *NoteListModel) copyPublishURL() {
	n, ok := m.target()
	if !ok {
		return
	}
	if !n.Published() {
		m.status = statusStyle("Note is not published")
		return
	}
	if err := clipboard.WriteAll(n.PublishURL); err != nil {
		m.setError("Error copying url", err)
		return
	}
	m.status = statusStyle("Copied " + n.PublishURL)
}

func (m *NoteListModel) refreshPreview() tea.Cmd {
	n, ok := m.app.SelectedNote()
	if !ok {
		return nil
	}
	return renderPreview(n, m.previewWidth(), m.previewStyle)
}

func (m *NoteListModel) setError(context string, err error) {
	m.log.WithError(err).Warn(context)
	m.status = errorStyle(fmt.Sprintf("%s: %v", context, err))
}

// shutdown stops the timer and stores the list settings for the next run.
func (m *NoteListModel) shutdown() {
	if err := m.scheduler.Close(); err != nil && !errors.Is(err, debounce.ErrClosed) {
		m.log.WithError(err).Warn("closing scheduler")
	}

	cfg := m.state.Config
	cfg.SetListSettings(m.app.Display, m.app.Sort)
	if cfg.GetConfigPath() == "" {
		return
	}
	if err := cfg.Save(); err != nil {
		m.log.WithError(err).Warn("saving list settings")
	}
}

func (m *NoteListModel) innerWidth() int {
	h, _ := appStyle.GetFrameSize()
	return max(m.width-h, 0)
}

func (m *NoteListModel) listWidth() int {
	return m.innerWidth() / 2
}

func (m *NoteListModel) previewWidth() int {
	w := m.innerWidth() - m.listWidth() - previewStyle.GetHorizontalFrameSize() - listStyle.GetHorizontalFrameSize()
	return max(w, 10)
}

func (m *NoteListModel) listHeight() int {
	_, v := appStyle.GetFrameSize()
	return max(m.height-v-headerLines-footerLines, 1)
}

func (m *NoteListModel) title() string {
	view := "All Notes"
	switch {
	case m.app.Criteria.ShowTrash:
		view = "Trash"
	case len(m.app.Criteria.Tags) > 0:
		view = "#" + strings.Join(m.app.Criteria.Tags, " #")
	}

	order := m.app.Sort.Mode.String()
	if m.app.Sort.Reversed {
		order += " (reversed)"
	}
	return fmt.Sprintf("%s · %s · %s", view, order, m.app.Display)
}

func (m *NoteListModel) View() string {
	width := m.listWidth()
	height := m.listHeight()

	var body string
	if placeholder := window.Placeholder(m.app.Collection.Loaded, m.app.Sequence.Len()); placeholder != "" {
		body = placeholderStyle.Render(placeholder)
	} else {
		rng := m.renderer.Visible(height)
		rows := m.renderer.Rows(m.app.Sequence, rng, m.selectedID(), m.excerpts)
		rendered := make([]string, len(rows))
		for i, r := range rows {
			rendered[i] = renderRow(r, m.renderer.Mode(), width)
		}
		body = cropLines(strings.Join(rendered, "\n"), rng.Offset, height)
	}

	list := listStyle.Width(width).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(m.title()),
			m.search.View(),
			lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body),
		),
	)

	content := m.preview
	if m.previewID == "" {
		content = placeholderStyle.Render(noNoteOpen)
	}
	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(height + headerLines).
			MaxHeight(height + headerLines).
			MaxWidth(m.previewWidth()).
			Render(content),
	)

	layout := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, preview),
		m.status,
		renderHelpWithinWidth(m.innerWidth(), m.help.View(m.keys)),
	)
	return appStyle.Render(layout)
}

func Run(s *state.State) error {
	m := NewNoteListModel(s)
	m.previewStyle = glamourStyle()

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
