package normalize

import (
	"regexp"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Go Meetup",
			want:  "go-meetup",
		},
		{
			name:  "quotes stripped not hyphenated",
			title: "Dev's   Meetup!!",
			want:  "devs-meetup",
		},
		{
			name:  "curly quotes stripped",
			title: "Dev’s Night",
			want:  "devs-night",
		},
		{
			name:  "surrounding whitespace",
			title: "  Cloud Summit 2026  ",
			want:  "cloud-summit-2026",
		},
		{
			name:  "symbol runs collapse to one hyphen",
			title: "AI & ML / Data",
			want:  "ai-ml-data",
		},
		{
			name:  "leading and trailing symbols",
			title: "!!Launch Party!!",
			want:  "launch-party",
		},
		{
			name:  "empty title yields empty slug",
			title: "   ",
			want:  "",
		},
		{
			name:  "already canonical",
			title: "devs-meetup",
			want:  "devs-meetup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slug(tt.title)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	titles := []string{
		"Hello World",
		"My App 2.0!",
		"  --weird--  input--  ",
		"C++ & Rust: A Comparison",
		"“Quoted” Talk",
	}

	for _, title := range titles {
		got := Slug(title)
		if got == "" {
			continue
		}
		if !valid.MatchString(got) {
			t.Errorf("Slug(%q) = %q, contains invalid characters or hyphen placement", title, got)
		}
		if Slug(got) != got {
			t.Errorf("Slug is not idempotent: Slug(%q) = %q, re-applied = %q", title, got, Slug(got))
		}
	}
}
