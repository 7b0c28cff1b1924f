package ls

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notelist/internal/excerpt"
	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/internal/window"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
	"github.com/Paintersrp/notelist/pkg/flags"
)

const defaultWidth = 80

func NewCmdLs(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "ls [--query text] [--tag name] [--trash] [--limit n]",
		Aliases: []string{"list"},
		Short:   "Print the note list without the interactive view.",
		Long: heredoc.Doc(`
			Prints the notes in list order using the configured display and
			sort. Pinned notes come first.

			Examples:
			  notelist ls
			  notelist ls -q "meeting tag:work" -n 10
			  notelist ls --trash --display condensed
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, limit)
		},
	}

	flags.AddFilter(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most this many notes (0 prints all)")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, limit int) error {
	c, seq, err := cmdpkg.LoadSequence(cmd.Context(), s, flags.HandleFilter(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if placeholder := window.Placeholder(c.Loaded, seq.Len()); placeholder != "" {
		fmt.Fprintln(out, placeholder)
		return nil
	}

	end := seq.Len()
	if limit > 0 {
		end = min(limit, end)
	}

	mode := s.Config.DisplayMode()
	r := window.NewRenderer(mode, 0)
	r.Sync(seq, mode, "")
	rows := r.Rows(seq, window.Range{Start: 0, End: end}, "", excerpt.NewCache(end))

	printRows(out, rows, mode, terminalWidth())
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// printRows writes one block per row: the title with its id, then the
// preview lines when the mode shows them.
func printRows(w io.Writer, rows []window.Row, mode window.DisplayMode, width int) {
	for i, row := range rows {
		if i > 0 && mode.ShowsPreview() {
			fmt.Fprintln(w)
		}

		marker := "  "
		if row.Pinned {
			marker = "* "
		}
		id := "  " + row.ID
		if row.Published {
			id += " (published)"
		}

		budget := max(width-runewidth.StringWidth(marker)-runewidth.StringWidth(id), 8)
		title := runewidth.FillRight(runewidth.Truncate(row.Title, budget, "…"), budget)
		fmt.Fprintln(w, strings.TrimRight(marker+title+id, " "))

		if !mode.ShowsPreview() || row.Preview == "" {
			continue
		}
		for _, line := range strings.Split(row.Preview, "\n") {
			if mode != window.Expanded {
				line = runewidth.Truncate(line, max(width-4, 8), "…")
			}
			fmt.Fprintln(w, "    "+line)
		}
	}
}
