// Package notebook orchestrates operations over the notes directory: edit
// sessions, deletion, reformatting, and listing. It owns the decision of when
// a note's content changed and therefore when metadata is refreshed and
// history recorded.
package notebook

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jotcli/jot/internal/note"
	"github.com/jotcli/jot/internal/slugs"
)

// VCS is the slice of revision control the notebook drives. Implemented by
// *vcs.Git; tests substitute a recorder.
type VCS interface {
	AddCommit(rel, msg string) error
	Commit(rel, msg string) error
	RemoveCommit(rel, msg string) error
}

// Notebook operates on one notes directory with one editor and one revision
// control backend. The directory is threaded in explicitly; there is no
// process-wide notes root.
type Notebook struct {
	Dir    string
	Editor string
	VCS    VCS
	Logger *slog.Logger
}

// New creates a Notebook rooted at dir.
func New(dir, editor string, v VCS, logger *slog.Logger) *Notebook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notebook{Dir: dir, Editor: editor, VCS: v, Logger: logger}
}

// ResolveFilename picks the target filename for an edit: an explicit
// filename wins (gaining a .md extension when it has none), otherwise the
// filename is derived from the slugified title.
func ResolveFilename(filename, title string) (string, error) {
	switch {
	case filename != "":
		if filepath.Ext(filename) == "" {
			filename += ".md"
		}
		return filename, nil
	case title != "":
		return slugs.Filename(title), nil
	}
	return "", fmt.Errorf("a filename or --title is required")
}

// Path returns the absolute path for a note filename.
func (nb *Notebook) Path(filename string) string {
	return filepath.Join(nb.Dir, filename)
}

// Read returns the parsed document for filename.
func (nb *Notebook) Read(filename string) (*note.Document, error) {
	return note.Read(nb.Path(filename))
}

// Remove deletes a note and records the deletion. The file removal itself is
// delegated to revision control, which drops it from both the working tree
// and the index.
func (nb *Notebook) Remove(filename string) error {
	if _, err := os.Stat(nb.Path(filename)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", note.ErrNotFound, filename)
		}
		return fmt.Errorf("stat %s: %w", filename, err)
	}

	msg := fmt.Sprintf("Deleting note %s", filename)
	nb.Logger.Debug("removing note", "file", filename)
	return nb.VCS.RemoveCommit(filename, msg)
}
