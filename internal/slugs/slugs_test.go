package slugs

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brain Dance", "brain-dance"},
		{"UPPER CASE", "upper-case"},
		{"Special: Characters!", "special-characters"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"a---b", "a-b"},
		{"Meeting 2025-02-01", "meeting-2025-02-01"},
		{"Crème Brûlée", "creme-brulee"},
		{"notes_with_underscores", "notes-with-underscores"},
		{"_wrapped_in_underscores_", "wrapped-in-underscores"},
		{"snake__case - mix", "snake-case-mix"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeAlphabet(t *testing.T) {
	inputs := []string{
		"Brain Dance",
		"!!! What?!",
		"tabs\tand\nnewlines",
		"mixed 123 Números",
		"_snake__case_",
	}

	for _, in := range inputs {
		got := Make(in)
		if got == "" {
			continue
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Make(%q) = %q: leading or trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Make(%q) = %q: multi-hyphen run", in, got)
		}
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				t.Errorf("Make(%q) = %q: invalid rune %q", in, got, r)
			}
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Brain Dance", "a---b", "Crème Brûlée", "already-a-slug", "notes_with_underscores"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Brain Dance"); got != "brain-dance.md" {
		t.Fatalf("Filename(%q) = %q, want %q", "Brain Dance", got, "brain-dance.md")
	}
}
