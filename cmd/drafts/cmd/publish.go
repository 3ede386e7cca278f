package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"drafts/internal/application/commands"
	"drafts/internal/config"
	"drafts/internal/domain"
)

var (
	postsDir    string
	publishDate string
)

var publishCmd = &cobra.Command{
	Use:   "publish <draft-path>",
	Short: "Move a draft into the posts directory",
	Long: `Publish a draft: rewrite its "date: YYYY-MM-DD" front matter to the
publish date and move it to <posts>/<YYYY-MM-DD>-<name>.

Examples:
  drafts publish ../_drafts/hello.md
  drafts publish ../_drafts/hello.md --date 2024-05-01 --posts ../_posts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if publishDate != "" {
			parsed, err := domain.ParseDate(publishDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", publishDate)
			}
			day = parsed
		}

		publish := commands.NewPublishDraftCommand(GetRepo(), args[0], postsDir, day)
		result, err := publish.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&postsDir, "posts", config.PostsDir(), "path to the posts directory")
	publishCmd.Flags().StringVar(&publishDate, "date", "", "publish date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(publishCmd)
}
