package header

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseNoHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain text", "just some text\nwith lines\n"},
		{"empty", ""},
		{"indented delimiter", "  ---\nnot: a header\n---\n"},
		{"delimiter mid-file", "intro\n---\nkey: value\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if len(fields) != 0 {
				t.Errorf("expected empty fields, got %v", fields)
			}
			// Headerless text passes through verbatim, untrimmed.
			if body != tt.raw {
				t.Errorf("body = %q, want original text %q", body, tt.raw)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	raw := "---\n" +
		"created: 2025-02-01T10:30:00Z\n" +
		"modified: 2025-02-01T10:31:12Z\n" +
		"title: Brain Dance\n" +
		"tags:\n" +
		"    - ideas\n" +
		"    - later\n" +
		"rating: 5\n" +
		"---\n" +
		"\n" +
		"# Brain Dance\n\nBody text here.\n"

	fields, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	created, ok := fields["created"].(time.Time)
	if !ok {
		t.Fatalf("created is %T, want time.Time", fields["created"])
	}
	want := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)
	if !created.Equal(want) {
		t.Errorf("created = %v, want %v", created, want)
	}

	if title := fields["title"]; title != "Brain Dance" {
		t.Errorf("title = %v, want Brain Dance", title)
	}
	tags, ok := fields["tags"].([]string)
	if !ok || !reflect.DeepEqual(tags, []string{"ideas", "later"}) {
		t.Errorf("tags = %v (%T), want [ideas later]", fields["tags"], fields["tags"])
	}
	if rating := fields["rating"]; rating != 5 {
		t.Errorf("rating = %v, want 5", rating)
	}
	if body != "# Brain Dance\n\nBody text here." {
		t.Errorf("body = %q", body)
	}
}

func TestParseBodyMayContainDelimiter(t *testing.T) {
	raw := "---\ntitle: x\n---\n\nabove\n---\nbelow\n"
	fields, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if fields["title"] != "x" {
		t.Errorf("title = %v", fields["title"])
	}
	if body != "above\n---\nbelow" {
		t.Errorf("body = %q", body)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid yaml", "---\n\t: [unclosed\n---\nbody\n"},
		{"scalar header", "---\njust a scalar\n---\nbody\n"},
		{"unterminated", "---\ntitle: x\nbody with no closing line\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
		})
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	fields := map[string]any{
		"created":  time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC),
		"modified": time.Date(2025, 2, 3, 8, 0, 59, 0, time.UTC),
		"title":    "Brain Dance",
		"tags":     []string{"ideas", "later"},
		"source":   "imported-from-email",
	}
	body := "\n# Heading\n\nSome **markdown** body.\n\n"

	raw, err := Render(fields, body)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.HasPrefix(raw, Delimiter+"\n") {
		t.Fatalf("rendered text does not start with delimiter:\n%s", raw)
	}

	got, gotBody, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if gotBody != strings.TrimSpace(body) {
		t.Errorf("body = %q, want %q", gotBody, strings.TrimSpace(body))
	}
	if len(got) != len(fields) {
		t.Fatalf("round-trip field count = %d, want %d (%v)", len(got), len(fields), got)
	}
	for k, want := range fields {
		gv := got[k]
		if wt, ok := want.(time.Time); ok {
			gt, ok := gv.(time.Time)
			if !ok || !gt.Equal(wt) {
				t.Errorf("%s = %v (%T), want %v", k, gv, gv, wt)
			}
			continue
		}
		if !reflect.DeepEqual(gv, want) {
			t.Errorf("%s = %v (%T), want %v (%T)", k, gv, gv, want, want)
		}
	}
}

func TestRoundTripNonStringSequence(t *testing.T) {
	// A pass-through field with a non-string list stays []any, not []string.
	raw, err := Render(map[string]any{"refs": []any{1, 2}, "title": "x"}, "body")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	got, _, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	refs, ok := got["refs"].([]any)
	if !ok {
		t.Fatalf("refs = %v (%T), want []any", got["refs"], got["refs"])
	}
	if !reflect.DeepEqual(refs, []any{1, 2}) {
		t.Errorf("refs = %v, want [1 2]", refs)
	}
}

func TestRenderEmptyBody(t *testing.T) {
	raw, err := Render(map[string]any{"title": "x"}, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	fields, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if fields["title"] != "x" || body != "" {
		t.Errorf("got fields=%v body=%q", fields, body)
	}
}
