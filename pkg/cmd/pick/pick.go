package pick

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/fzf"
	"github.com/Paintersrp/notelist/internal/state"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
	"github.com/Paintersrp/notelist/pkg/flags"
)

func NewCmdPick(s *state.State) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "pick [fuzzy query] [--query text] [--tag name] [--trash]",
		Aliases: []string{"p", "find"},
		Short:   "Fuzzy find a note in the list and open it.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over the notes in list order, with a preview
			of each note. The chosen note is opened in the configured editor.

			Examples:
			  notelist pick
			  notelist pick grocer
			  notelist pick -t work --print
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, printOnly)
		},
	}

	flags.AddFilter(cmd)
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the id of the chosen note instead of opening it")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, printOnly bool) error {
	_, seq, err := cmdpkg.LoadSequence(cmd.Context(), s, flags.HandleFilter(cmd))
	if err != nil {
		return err
	}

	finder := fzf.NewFuzzyFinder(s.Vault, seq, "Select a note.")
	choice, err := finder.Run(strings.Join(args, " "))
	if errors.Is(err, fzf.ErrNoSelection) {
		fmt.Fprintln(cmd.OutOrStdout(), "No note selected")
		return nil
	}
	if err != nil {
		return err
	}

	if printOnly {
		fmt.Fprintln(cmd.OutOrStdout(), choice.ID)
		return nil
	}

	return finder.Execute(choice, s.Config.Editor, s.Config.EditorArgs)
}
