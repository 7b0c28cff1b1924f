package trash

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/state"
	"github.com/Paintersrp/notelist/pkg/arg"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
)

// confirm asks before destructive commands. Tests replace it.
var confirm = func(prompt string) (bool, error) {
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}

func NewCmdTrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash [note]",
		Short: "Move a note to the trash.",
		Long: heredoc.Doc(`
			This command moves a note to the 'trash' subdirectory of the vault.
			The note keeps its id and can be restored later.

			Examples:
			  notelist trash ideas/robots.md
			  notelist trash restore ideas/robots
			  notelist trash empty
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
			if err := s.Vault.Trash(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Trashed", id)
			return nil
		},
	}

	cmd.AddCommand(newCmdRestore(s), newCmdDelete(s), newCmdEmpty(s))
	return cmd
}

func newCmdRestore(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [note]",
		Short: "Move a trashed note back into the vault.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdpkg.ResolveNoteID(s, args[0])
			if err != nil {
				return err
			}
			if err := s.Vault.Restore(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Restored", id)
			return nil
		},
	}
}

func newCmdDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [note]",
		Short: "Delete a note permanently.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdpkg.ResolveNoteID(s, args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete %s forever?", id))
				if err != nil || !ok {
					return err
				}
			}
			if err := s.Vault.DeleteForever(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newCmdEmpty(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Delete every note in the trash.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm("Delete every note in the trash?")
				if err != nil || !ok {
					return err
				}
			}
			n, err := s.Vault.EmptyTrash()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d notes\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
