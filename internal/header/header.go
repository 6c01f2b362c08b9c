// Package header serializes and deserializes the YAML frontmatter block
// embedded at the top of a note file.
//
// The wire format is the usual frontmatter convention:
//
//	---
//	created: 2025-02-01T10:30:00Z
//	modified: 2025-02-01T10:31:12Z
//	title: Brain Dance
//	tags:
//	    - ideas
//	---
//
//	body text
//
// A file has a header iff its first line is exactly the delimiter. Anything
// else, including a delimiter preceded by whitespace, is body text.
package header

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the line that opens and closes a header block.
const Delimiter = "---"

// ParseError reports a header block that is present but cannot be decoded.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid note header: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid note header: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse splits raw note text into its header fields and body.
//
// If the text does not start with the delimiter line, Parse returns an empty
// map and the original text unmodified. If a header is present, the segment
// between the first two delimiter lines is decoded as YAML and the remainder
// is returned as the body with surrounding whitespace trimmed. A header that
// is unterminated or not valid YAML is a fatal *ParseError.
func Parse(raw string) (map[string]any, string, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || lines[0] != Delimiter {
		return map[string]any{}, raw, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, "", &ParseError{Reason: "unterminated header block"}
	}

	var fields map[string]any
	block := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return nil, "", &ParseError{Reason: "header is not valid YAML", Err: err}
	}
	// YAML decodes an empty or comment-only block to a nil map.
	if fields == nil {
		fields = map[string]any{}
	}
	normalize(fields)

	body := strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	return fields, body, nil
}

// Render encodes fields as a YAML header block followed by a blank line and
// the body. Parse(Render(m, b)) yields m value-for-value and b trimmed of
// surrounding whitespace.
func Render(fields map[string]any, body string) (string, error) {
	encoded, err := yaml.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode note header: %w", err)
	}

	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")
	b.Write(encoded)
	b.WriteString(Delimiter)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}

// normalize rewrites decoded YAML values into the canonical in-memory forms
// used by the metadata model, so parse(render(m)) compares equal to m.
func normalize(fields map[string]any) {
	for k, v := range fields {
		fields[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case []any:
		strs := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				for i, item := range val {
					val[i] = normalizeValue(item)
				}
				return val
			}
			strs = append(strs, s)
		}
		return strs
	case map[string]any:
		normalize(val)
		return val
	default:
		return v
	}
}
