package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/slugs"
)

var slugCmd = &cobra.Command{
	Use:   "slug <text>...",
	Short: "Print the slug for a title",
	Long: `Print the filesystem- and URL-safe slug derived from the given text.

This is the same transformation used to derive a filename from --title.

Examples:
  jot slug "Brain Dance"     # brain-dance
  jot slug Crème Brûlée      # creme-brulee`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(slugs.Make(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
