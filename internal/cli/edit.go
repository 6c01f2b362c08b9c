package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/notebook"
	"github.com/jotcli/jot/internal/ui"
)

var (
	editTitle string
	editTags  []string
)

var editCmd = &cobra.Command{
	Use:   "edit [filename]",
	Short: "Create or update a note",
	Long: `Open a note in your editor, creating it first when it does not exist.

A new note gets a metadata header with created/modified timestamps plus any
--title and --tag values. When no filename is given, the filename is derived
from the slugified title.

Editing an existing note re-reads it after the editor exits: if nothing
changed, nothing is written and no commit is made; otherwise the modified
timestamp is refreshed and the change committed.

Examples:
  jot edit shopping-list
  jot edit --title "Brain Dance"              # Creates brain-dance.md
  jot edit --title "Brain Dance" -t ideas -t later`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args)
	},
}

func runEdit(args []string) error {
	filename := ""
	if len(args) > 0 {
		filename = args[0]
	}

	nb := newNotebook()
	res, err := nb.Edit(notebook.EditOptions{
		Filename: filename,
		Title:    editTitle,
		Tags:     editTags,
	})
	if err != nil {
		return err
	}

	switch {
	case res.Created:
		fmt.Println(ui.Successf("Created %s", ui.FilePath(res.Filename)))
	case res.Changed:
		fmt.Println(ui.Successf("Updated %s", ui.FilePath(res.Filename)))
	default:
		fmt.Println(ui.Hint(fmt.Sprintf("%s unchanged, nothing to commit", res.Filename)))
	}
	return nil
}

// addEditFlags registers the edit flags. The root command takes them too so
// that `jot --title ...` works without naming the edit subcommand.
func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&editTitle, "title", "T", "", "Title for the note")
	cmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "Tag for the note (can be repeated)")
}

func init() {
	addEditFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}
