package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/notebook"
	"github.com/jotcli/jot/internal/ui"
)

var reformatCmd = &cobra.Command{
	Use:   "reformat <filename>",
	Short: "Rewrite a note's metadata header",
	Long: `Rebuild a note's metadata header without disturbing its provenance.

Filesystem-derived fields (created, modified, title) form the base; any
fields already present in the header win over them. The file's timestamps
are restored after the rewrite, so reformatting is invisible to later
imports and reformats.

Useful for giving headers to notes imported from plain files.

Examples:
  jot reformat shopping-list
  jot reformat legacy.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, err := notebook.ResolveFilename(args[0], "")
		if err != nil {
			return err
		}

		nb := newNotebook()
		if err := nb.Reformat(filename); err != nil {
			return err
		}

		fmt.Println(ui.Successf("Reformatted %s", ui.FilePath(filename)))
		return nil
	},
}

var reformatAllCmd = &cobra.Command{
	Use:   "reformat-all",
	Short: "Rewrite every note's metadata header",
	Long: `Reformat every note file in the notes directory, most recently
modified first, and report the count processed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nb := newNotebook()
		n, err := nb.ReformatAll()
		if err != nil {
			return fmt.Errorf("reformatted %d notes before failing: %w", n, err)
		}

		fmt.Println(ui.Successf("Reformatted %d notes", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reformatCmd)
	rootCmd.AddCommand(reformatAllCmd)
}
