package notebook

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runEditor opens path in the configured editor and blocks until it exits.
//
// A failure to launch the editor (binary missing) is fatal; the editor's own
// exit status is not.
func (nb *Notebook) runEditor(path string) error {
	var cmd *exec.Cmd

	// An editor containing spaces is a compound command like "open -a Cursor";
	// run it through the shell so its arguments survive.
	if strings.Contains(nb.Editor, " ") {
		cmd = exec.Command("sh", "-c", nb.Editor+" "+shellQuote(path))
	} else {
		cmd = exec.Command(nb.Editor, path)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	nb.Logger.Debug("launching editor", "editor", nb.Editor, "file", path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch editor %q: %w", nb.Editor, err)
	}
	if err := cmd.Wait(); err != nil {
		nb.Logger.Debug("editor exited with error", "editor", nb.Editor, "err", err)
	}
	return nil
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
