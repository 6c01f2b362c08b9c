package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/notebook"
	"github.com/jotcli/jot/internal/ui"
)

var readPretty bool

var readCmd = &cobra.Command{
	Use:   "read <filename>",
	Short: "Print a note's body",
	Long: `Print the body of a note, without its metadata header.

With --pretty the markdown is rendered for the terminal.

Examples:
  jot read shopping-list
  jot read shopping-list --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, err := notebook.ResolveFilename(args[0], "")
		if err != nil {
			return err
		}

		nb := newNotebook()
		doc, err := nb.Read(filename)
		if err != nil {
			return err
		}

		if readPretty {
			rendered, err := ui.RenderMarkdown(doc.Body, ui.TermWidth())
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			fmt.Print(rendered)
			return nil
		}

		fmt.Println(doc.Body)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readPretty, "pretty", false, "Render markdown for the terminal")
	rootCmd.AddCommand(readCmd)
}
