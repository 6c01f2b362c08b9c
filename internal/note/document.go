package note

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jotcli/jot/internal/atomicfile"
	"github.com/jotcli/jot/internal/header"
)

// ErrNotFound reports that no note file exists at the requested path.
var ErrNotFound = errors.New("note not found")

// Document is the decoded form of one note file: its header fields and the
// markdown body that follows them.
type Document struct {
	Meta Metadata
	Body string
}

// Read loads and parses the note file at path. A file with no header block
// yields an empty Meta and the file's entire content as Body. A malformed
// header is a fatal *header.ParseError.
func Read(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read note %s: %w", path, err)
	}

	fields, body, err := header.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse note %s: %w", path, err)
	}

	return &Document{Meta: Metadata(fields), Body: body}, nil
}

// Write renders doc and overwrites the file at path in one atomic step.
func Write(path string, doc *Document) error {
	raw, err := header.Render(doc.Meta, doc.Body)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, []byte(raw), 0); err != nil {
		return fmt.Errorf("write note %s: %w", path, err)
	}
	return nil
}

// WritePreservingTimes writes doc and then resets the file's access and
// modification times to created and modified. Reformatting uses this so
// rewriting the header never advances the provenance MetadataFromFileInfo
// reads back.
func WritePreservingTimes(path string, doc *Document, created, modified time.Time) error {
	if err := Write(path, doc); err != nil {
		return err
	}
	if err := os.Chtimes(path, created, modified); err != nil {
		return fmt.Errorf("restore times on %s: %w", path, err)
	}
	return nil
}

// Equal reports structural equality: same metadata and same body.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Body == other.Body && d.Meta.Equal(other.Meta)
}
