package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List notes, most recently modified first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nb := newNotebook()
		files, err := nb.Files()
		if err != nil {
			return err
		}

		for _, f := range files {
			fmt.Printf("%s  %s\n", ui.Muted.Render(f.ModTime.Format("2006-01-02 15:04")), f.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
