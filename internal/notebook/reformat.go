package notebook

import (
	"github.com/jotcli/jot/internal/note"
)

// Reformat rewrites one note's header: filesystem-derived fields form the
// base, any existing header fields win on collision, and the file's
// timestamps are restored afterwards so reformatting never advances the
// observable provenance.
func (nb *Notebook) Reformat(filename string) error {
	path := nb.Path(filename)

	doc, err := note.Read(path)
	if err != nil {
		return err
	}

	base, err := note.MetadataFromFileInfo(path)
	if err != nil {
		return err
	}
	doc.Meta = note.Merge(base, doc.Meta)

	created, modified, err := note.FileTimes(path)
	if err != nil {
		return err
	}
	if modified.Before(created) {
		created = modified
	}

	nb.Logger.Debug("reformatting note", "file", filename)
	return note.WritePreservingTimes(path, doc, created, modified)
}

// ReformatAll reformats every note file in the directory, most recently
// modified first, and returns the number processed.
func (nb *Notebook) ReformatAll() (int, error) {
	files, err := nb.Files()
	if err != nil {
		return 0, err
	}

	for i, f := range files {
		if err := nb.Reformat(f.Name); err != nil {
			return i, err
		}
	}
	return len(files), nil
}
