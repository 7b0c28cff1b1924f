package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	selectPrevious key.Binding
	selectNext     key.Binding
	cursorUp       key.Binding
	cursorDown     key.Binding
	pageUp         key.Binding
	pageDown       key.Binding
	openNote       key.Binding
	closeNote      key.Binding
	pin            key.Binding
	trash          key.Binding
	restore        key.Binding
	emptyTrash     key.Binding
	cycleTag       key.Binding
	toggleTrash    key.Binding
	allNotes       key.Binding
	toggleDisplay  key.Binding
	cycleSort      key.Binding
	reverseSort    key.Binding
	copyURL        key.Binding
	focusSearch    key.Binding
	clearSearch    key.Binding
	submitSearch   key.Binding
	toggleHelp     key.Binding
	quit           key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		selectPrevious: key.NewBinding(
			key.WithKeys("ctrl+shift+up", "ctrl+up", "alt+up", "alt+k"),
			key.WithHelp("ctrl+↑", "previous note"),
		),
		selectNext: key.NewBinding(
			key.WithKeys("ctrl+shift+down", "ctrl+down", "alt+down", "alt+j"),
			key.WithHelp("ctrl+↓", "next note"),
		),
		cursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		cursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "edit"),
		),
		closeNote: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		trash: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "trash"),
		),
		restore: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "restore"),
		),
		emptyTrash: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "empty trash"),
		),
		cycleTag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next tag"),
		),
		toggleTrash: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "trash view"),
		),
		allNotes: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all notes"),
		),
		toggleDisplay: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "display"),
		),
		cycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		reverseSort: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		copyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		focusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		clearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		submitSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "done"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (m listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.focusSearch,
		m.toggleDisplay,
		m.toggleHelp,
		m.quit,
	}
}

func (m listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.cursorUp, m.cursorDown, m.selectPrevious, m.selectNext, m.pageUp, m.pageDown},
		{m.openNote, m.closeNote, m.pin, m.trash, m.restore, m.emptyTrash, m.copyURL},
		{m.cycleTag, m.toggleTrash, m.allNotes, m.focusSearch, m.clearSearch},
		{m.toggleDisplay, m.cycleSort, m.reverseSort, m.toggleHelp, m.quit},
	}
}
