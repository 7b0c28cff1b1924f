package note

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// EditorLaunch represents the command necessary to start an editor along with
// whether the caller should wait for the process to finish before resuming the
// UI.
type EditorLaunch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type editorCommand struct {
	command string
	args    []string
	wait    bool
	silence bool
}

func (cmd editorCommand) launch() *EditorLaunch {
	c := exec.Command(cmd.command, cmd.args...)
	if cmd.silence {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}
	return &EditorLaunch{Cmd: c, Wait: cmd.wait}
}

// EditorLaunchForPath prepares an editor command for the provided path without
// starting it. An empty editor falls back to $VISUAL, then $EDITOR.
func EditorLaunchForPath(path, editor, extraArgs string) (*EditorLaunch, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("VISUAL"))
	}
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}

	cmd, err := buildEditorCommand(path, editor, extraArgs)
	if err != nil {
		return nil, err
	}
	return cmd.launch(), nil
}

func buildEditorCommand(path, editor, extraArgs string) (*editorCommand, error) {
	switch editor {
	case "":
		return nil, fmt.Errorf("editor not configured")
	case "nvim", "vim", "vi", "nano", "hx", "micro":
		args := append(strings.Fields(extraArgs), path)
		return &editorCommand{command: editor, args: args, wait: true}, nil
	case "vscode", "code":
		return &editorCommand{command: "code", args: []string{"--goto", path}, silence: true}, nil
	default:
		// Anything else is treated as a terminal editor command line,
		// e.g. "emacs -nw".
		fields := strings.Fields(editor)
		args := append(fields[1:], strings.Fields(extraArgs)...)
		args = append(args, path)
		return &editorCommand{command: fields[0], args: args, wait: true}, nil
	}
}

// EditorClosedMsg is delivered once a blocking editor exits.
type EditorClosedMsg struct {
	ID  string
	Err error
}

// BubbleteaOpen suspends the program while a terminal editor runs, or starts
// a GUI editor in the background.
func BubbleteaOpen(id, path, editor, extraArgs string) tea.Cmd {
	launch, err := EditorLaunchForPath(path, editor, extraArgs)
	if err != nil {
		return func() tea.Msg { return EditorClosedMsg{ID: id, Err: err} }
	}

	if !launch.Wait {
		return func() tea.Msg {
			if err := launch.Cmd.Start(); err != nil {
				return EditorClosedMsg{ID: id, Err: err}
			}
			return nil
		}
	}

	return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
		return EditorClosedMsg{ID: id, Err: err}
	})
}
