package pin

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/pkg/arg"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
)

func NewCmdPin(s *state.State) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "pin [note] [--remove]",
		Short: "Pin a note to the top of the list.",
		Long: heredoc.Doc(`
			Pinned notes are listed before every other note regardless of the
			sort order. The flag is stored in the note's front matter.

			Examples:
			  notelist pin ideas/robots.md
			  notelist pin ideas/robots --remove
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := arg.HandleNote(args)
			if err != nil {
				_ = cmd.Help()
				return err
			}
			id, err := cmdpkg.ResolveNoteID(s, input)
			if err != nil {
				return err
			}
			if err := s.Vault.SetPinned(id, !remove); err != nil {
				return err
			}

			verb := "Pinned"
			if remove {
				verb = "Unpinned"
			}
			fmt.Fprintln(cmd.OutOrStdout(), verb, id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "Unpin the note instead")
	return cmd
}
