package notebook

import (
	"fmt"
	"os"

	"github.com/jotcli/jot/internal/note"
)

// EditOptions configures one edit session.
type EditOptions struct {
	// Filename targets an existing or new note directly. When empty, the
	// filename is derived from Title.
	Filename string

	// Title becomes the title header field on a newly created note, and the
	// source of the derived filename when Filename is empty.
	Title string

	// Tags become the tags header field on a newly created note.
	Tags []string
}

// EditResult describes what an edit session did.
type EditResult struct {
	Path     string
	Filename string
	Created  bool
	Changed  bool
}

// Edit runs one edit session: create-or-update detection, editor invocation,
// change detection, metadata refresh, persistence, and history.
func (nb *Notebook) Edit(opts EditOptions) (*EditResult, error) {
	filename, err := ResolveFilename(opts.Filename, opts.Title)
	if err != nil {
		return nil, err
	}
	path := nb.Path(filename)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nb.editCreate(path, filename, opts)
	}
	return nb.editUpdate(path, filename)
}

// editCreate synthesizes fresh metadata, writes an empty-body note so the
// editor opens a header-populated file, runs the editor, and records the
// addition. New notes are committed even when the editor writes nothing.
func (nb *Notebook) editCreate(path, filename string, opts EditOptions) (*EditResult, error) {
	extra := note.Metadata{}
	if opts.Title != "" {
		extra["title"] = opts.Title
	}
	if len(opts.Tags) > 0 {
		extra["tags"] = opts.Tags
	}

	doc := &note.Document{Meta: note.NewMetadata(extra), Body: ""}
	if err := note.Write(path, doc); err != nil {
		return nil, err
	}
	nb.Logger.Debug("created note", "file", filename)

	if err := nb.runEditor(path); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Adding new note %s", filename)
	if err := nb.VCS.AddCommit(filename, msg); err != nil {
		return nil, err
	}

	return &EditResult{Path: path, Filename: filename, Created: true, Changed: true}, nil
}

// editUpdate snapshots the document, runs the editor, and compares. An
// unchanged note gets no metadata refresh, no write, and no commit. A note
// that never had a header is always rewritten so legacy imports gain one on
// their first edit.
func (nb *Notebook) editUpdate(path, filename string) (*EditResult, error) {
	last, err := note.Read(path)
	if err != nil {
		return nil, err
	}

	if err := nb.runEditor(path); err != nil {
		return nil, err
	}

	curr, err := note.Read(path)
	if err != nil {
		return nil, err
	}

	if len(last.Meta) > 0 && curr.Equal(last) {
		nb.Logger.Debug("note unchanged", "file", filename)
		return &EditResult{Path: path, Filename: filename}, nil
	}

	if curr.Meta.Created().IsZero() {
		// Headerless until now: seed provenance from the filesystem, letting
		// any fields the user typed during the session win.
		base, err := note.MetadataFromFileInfo(path)
		if err != nil {
			return nil, err
		}
		curr.Meta = note.Merge(base, curr.Meta)
	}
	curr.Meta.TouchModified()

	if err := note.Write(path, curr); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Editing note %s", filename)
	if err := nb.VCS.Commit(filename, msg); err != nil {
		return nil, err
	}

	return &EditResult{Path: path, Filename: filename, Changed: true}, nil
}
