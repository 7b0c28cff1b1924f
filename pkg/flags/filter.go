package flags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/filter"
)

func AddFilter(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"query",
			"q",
			"",
			"Only list notes containing every word of the query (tag:name matches a tag)",
		)
	cmd.Flags().
		StringSliceP(
			"tag",
			"t",
			nil,
			"Only list notes carrying one of the tags",
		)
	cmd.Flags().Bool("trash", false, "List trashed notes instead of live ones")
}

func HandleFilter(cmd *cobra.Command) filter.Criteria {
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		fmt.Printf("error retrieving query flag: %s\n", err)
		os.Exit(1)
	}

	tags, err := cmd.Flags().GetStringSlice("tag")
	if err != nil {
		fmt.Printf("error retrieving tag flag: %s\n", err)
		os.Exit(1)
	}

	trash, _ := cmd.Flags().GetBool("trash")

	return filter.Criteria{Query: query, Tags: tags, ShowTrash: trash}
}
