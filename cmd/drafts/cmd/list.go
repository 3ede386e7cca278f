package cmd

import (
	"github.com/spf13/cobra"

	"drafts/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the drafts once",
	Long: `Print the number of drafts followed by one "<index>: <path>" line
per file, in directory walk order.

Example:
  drafts list --dir ../../_drafts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, err := commands.NewListDraftsCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		_, err = listing.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
