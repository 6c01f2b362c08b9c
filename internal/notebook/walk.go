package notebook

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// notePattern matches the note files jot manages: markdown notes plus
// legacy plain-text imports.
const notePattern = "*.{md,txt}"

// File is one note file in the directory listing.
type File struct {
	Name    string
	Path    string
	ModTime time.Time
}

// Files lists the note files in the directory, most recently modified first.
func (nb *Notebook) Files() ([]File, error) {
	names, err := doublestar.Glob(os.DirFS(nb.Dir), notePattern)
	if err != nil {
		return nil, fmt.Errorf("glob notes in %s: %w", nb.Dir, err)
	}

	files := make([]File, 0, len(names))
	for _, name := range names {
		path := nb.Path(name)
		fi, err := os.Stat(path)
		if err != nil {
			// A file racing with deletion is not worth failing a listing over.
			nb.Logger.Debug("skipping unstattable note", "file", name, "err", err)
			continue
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, File{Name: name, Path: path, ModTime: fi.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
