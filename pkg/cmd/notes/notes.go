package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/internal/tui/notes"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n"},
		Short:   "Open the interactive note list.",
		Long: heredoc.Doc(`
			Opens the note list. Type / to search, tab to change how much of
			each note is shown, s and r to change the order, T for the trash
			and ? for every key.

			The list follows changes made to the vault while it is open.
		`),
		Annotations: map[string]string{cmdpkg.AnnotationWatch: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}

	return cmd
}
