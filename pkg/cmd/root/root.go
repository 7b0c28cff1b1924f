package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/constants"
	"github.com/Paintersrp/notelist/internal/state"
	cmdpkg "github.com/Paintersrp/notelist/pkg/cmd"
	"github.com/Paintersrp/notelist/pkg/cmd/ls"
	"github.com/Paintersrp/notelist/pkg/cmd/notes"
	"github.com/Paintersrp/notelist/pkg/cmd/pick"
	"github.com/Paintersrp/notelist/pkg/cmd/pin"
	"github.com/Paintersrp/notelist/pkg/cmd/trash"
)

// NewCmdRoot builds the command tree. The state is filled in once flags and
// environment overrides have been applied to cfg.
func NewCmdRoot(cfg *config.Config) *cobra.Command {
	s := &state.State{Config: cfg}
	notesCmd := notes.NewCmdNotes(s)

	cmd := &cobra.Command{
		Use:     "notelist",
		Short:   "Browse, search and curate the notes in a vault.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			A terminal note list: pinned notes first, a live search field,
			tag and trash views, and a preview of the open note.

			Settings are read from ~/.notelist/config.yaml and can be
			overridden with flags or NOTELIST_* environment variables.

			Examples:
			  notelist
			  notelist --display condensed --sort alphabetical
			  NOTELIST_VAULT_DIR=~/notes notelist ls -q "tag:work"
		`),
		Annotations:  notesCmd.Annotations,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initState(cmd, cfg, s)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		RunE: notesCmd.RunE,
	}

	pf := cmd.PersistentFlags()
	pf.String("vault", "", "Vault directory holding the notes")
	pf.String("editor", "", "Editor used to open notes")
	pf.String("display", "", "Row display: condensed, comfy or expanded")
	pf.String("sort", "", "Sort: modificationDate, creationDate or alphabetical")
	pf.Bool("reversed", false, "Reverse the sort order")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")

	viper.BindPFlag(constants.KeyVaultDir, pf.Lookup("vault"))
	viper.BindPFlag(constants.KeyEditor, pf.Lookup("editor"))
	viper.BindPFlag(constants.KeyDisplay, pf.Lookup("display"))
	viper.BindPFlag(constants.KeySort, pf.Lookup("sort"))
	viper.BindPFlag(constants.KeySortReversed, pf.Lookup("reversed"))
	viper.BindPFlag(constants.KeyLogFile, pf.Lookup("log-file"))
	viper.BindPFlag(constants.KeyLogLevel, pf.Lookup("log-level"))

	cmd.AddCommand(
		notesCmd,
		ls.NewCmdLs(s),
		pick.NewCmdPick(s),
		pin.NewCmdPin(s),
		trash.NewCmdTrash(s),
	)

	return cmd
}

func initState(cmd *cobra.Command, cfg *config.Config, s *state.State) error {
	cfg.Overlay(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return err
	}

	var opts []state.Option
	if cmd.Annotations[cmdpkg.AnnotationWatch] == "true" {
		opts = append(opts, state.WithWatcher())
	}

	built, err := state.NewState(cfg, opts...)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}
