package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/notebook"
	"github.com/jotcli/jot/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <filename>",
	Short: "Delete a note",
	Long: `Delete a note file and commit the removal.

Examples:
  jot rm shopping-list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, err := notebook.ResolveFilename(args[0], "")
		if err != nil {
			return err
		}

		nb := newNotebook()
		if err := nb.Remove(filename); err != nil {
			return err
		}

		fmt.Println(ui.Successf("Deleted %s", ui.FilePath(filename)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
