// Package note models a single note: its metadata header and markdown body,
// plus reading and writing the canonical on-disk representation.
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

// Metadata is the decoded header of a note. The required keys are "created"
// and "modified" (UTC, second precision); "title" and "tags" are optional.
// Any other keys pass through verbatim.
type Metadata map[string]any

// Now returns the current time truncated to whole seconds in UTC, the only
// precision note timestamps carry.
func Now() time.Time {
	return time.Now().Truncate(time.Second).UTC()
}

// NewMetadata builds metadata for a brand-new note: created and modified both
// set to now, merged with extra. Keys in extra win on collision, though the
// normal CLI flow never supplies created/modified there.
func NewMetadata(extra Metadata) Metadata {
	now := Now()
	m := Metadata{
		"created":  now,
		"modified": now,
	}
	return Merge(m, extra)
}

// MetadataFromFileInfo derives metadata from filesystem attributes, used when
// importing a note that has no embedded header. Created comes from the
// platform's creation-time equivalent (falling back to mtime where none is
// exposed), modified from mtime, and title from the filename without
// extension.
func MetadataFromFileInfo(path string) (Metadata, error) {
	created, modified, err := FileTimes(path)
	if err != nil {
		return nil, err
	}
	// A touched-back file can report a creation equivalent after its mtime;
	// created <= modified must hold in any header we derive.
	if created.After(modified) {
		created = modified
	}

	name := filepath.Base(path)
	title := strings.TrimSuffix(name, filepath.Ext(name))

	return Metadata{
		"created":  created,
		"modified": modified,
		"title":    title,
	}, nil
}

// FileTimes returns the creation-time equivalent and modification time of the
// file at path, truncated to seconds in UTC.
func FileTimes(path string) (created, modified time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}

	modified = fi.ModTime().Truncate(time.Second).UTC()
	created = modified
	if bt, ok := birthTime(fi); ok {
		created = bt.Truncate(time.Second).UTC()
	}
	return created, modified, nil
}

// Merge returns the union of base and overlay, with overlay winning on key
// collision. base is modified in place and returned.
func Merge(base, overlay Metadata) Metadata {
	if base == nil {
		base = Metadata{}
	}
	for k, v := range overlay {
		base[k] = v
	}
	return base
}

// TouchModified sets modified to now, in place. Created is never altered.
func (m Metadata) TouchModified() {
	m["modified"] = Now()
}

// Created returns the created timestamp, or the zero time if absent.
func (m Metadata) Created() time.Time { return m.timeField("created") }

// Modified returns the modified timestamp, or the zero time if absent.
func (m Metadata) Modified() time.Time { return m.timeField("modified") }

// Title returns the title field, or "" if absent.
func (m Metadata) Title() string {
	if s, ok := m["title"].(string); ok {
		return s
	}
	return ""
}

// Tags returns the tag list, or nil if absent.
func (m Metadata) Tags() []string {
	if tags, ok := m["tags"].([]string); ok {
		return tags
	}
	return nil
}

func (m Metadata) timeField(key string) time.Time {
	if t, ok := m[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

// Equal reports whether two metadata mappings carry the same keys and values.
// Timestamps compare by instant, tag lists element-wise.
func (m Metadata) Equal(other Metadata) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Metadata:
		bv, ok := b.(Metadata)
		return ok && av.Equal(bv)
	case map[string]any:
		bv, ok := b.(map[string]any)
		return ok && Metadata(av).Equal(Metadata(bv))
	default:
		// YAML can decode values == would panic on (e.g. !!binary).
		return reflect.DeepEqual(a, b)
	}
}
