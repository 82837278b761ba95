package validator

import (
	"errors"
	"strings"
	"testing"

	"evently/pkg/logger"
	"evently/pkg/model"
)

func newTestValidator(t *testing.T) *EventValidator {
	t.Helper()
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewEventValidator(log)
}

func validEvent() *model.Event {
	return &model.Event{
		Title:       "Go Conference 2026",
		Description: "A conference about Go.",
		Overview:    "Two days of talks.",
		Image:       "https://images.example.com/go-conf.png",
		Venue:       "Convention Center",
		Location:    "Berlin",
		Date:        "2026-03-05",
		Time:        "09:00",
		Mode:        "offline",
		Audience:    "developers",
		Organizer:   "Gophers e.V.",
		Agenda:      []string{"Keynote", "Workshops"},
		Tags:        []string{"go", "conference"},
	}
}

func TestPrepare_CanonicalizesNewEvent(t *testing.T) {
	v := newTestValidator(t)

	event := validEvent()
	event.Title = "  Go  Conference 2026! "
	event.Date = "March 5, 2026"
	event.Time = "9:05"
	event.Tags = []string{" go ", "go", "conference"}

	if err := v.Prepare(event, ""); err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}

	if event.Title != "Go  Conference 2026!" {
		t.Errorf("title = %q, want trimmed original", event.Title)
	}
	if event.Slug != "go-conference-2026" {
		t.Errorf("slug = %q, want %q", event.Slug, "go-conference-2026")
	}
	if event.Date != "2026-03-05" {
		t.Errorf("date = %q, want %q", event.Date, "2026-03-05")
	}
	if event.Time != "09:05" {
		t.Errorf("time = %q, want %q", event.Time, "09:05")
	}
	if len(event.Tags) != 2 || event.Tags[0] != "go" || event.Tags[1] != "conference" {
		t.Errorf("tags = %v, want deduplicated [go conference]", event.Tags)
	}
}

func TestPrepare_IdempotentOnCanonicalRecord(t *testing.T) {
	v := newTestValidator(t)

	event := validEvent()
	if err := v.Prepare(event, ""); err != nil {
		t.Fatalf("first Prepare returned error: %v", err)
	}

	before := *event
	beforeAgenda := append([]string(nil), event.Agenda...)
	beforeTags := append([]string(nil), event.Tags...)

	if err := v.Prepare(event, event.Title); err != nil {
		t.Fatalf("second Prepare returned error: %v", err)
	}

	if event.Slug != before.Slug || event.Date != before.Date || event.Time != before.Time {
		t.Errorf("second pass changed canonical fields: %+v vs %+v", event, before)
	}
	if len(event.Agenda) != len(beforeAgenda) || len(event.Tags) != len(beforeTags) {
		t.Errorf("second pass changed slices: agenda %v tags %v", event.Agenda, event.Tags)
	}
}

func TestPrepare_SlugRegeneration(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		title     string
		prevTitle string
		slug      string
		wantSlug  string
	}{
		{
			name:      "title unchanged keeps slug",
			title:     "Go Conference 2026",
			prevTitle: "Go Conference 2026",
			slug:      "legacy-slug",
			wantSlug:  "legacy-slug",
		},
		{
			name:      "title changed regenerates slug",
			title:     "Rust Conference 2026",
			prevTitle: "Go Conference 2026",
			slug:      "go-conference-2026",
			wantSlug:  "rust-conference-2026",
		},
		{
			name:      "empty slug always generated",
			title:     "Go Conference 2026",
			prevTitle: "Go Conference 2026",
			slug:      "",
			wantSlug:  "go-conference-2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validEvent()
			event.Title = tt.title
			event.Slug = tt.slug

			if err := v.Prepare(event, tt.prevTitle); err != nil {
				t.Fatalf("Prepare returned error: %v", err)
			}
			if event.Slug != tt.wantSlug {
				t.Errorf("slug = %q, want %q", event.Slug, tt.wantSlug)
			}
		})
	}
}

func TestPrepare_RejectsInvalidRecords(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		mutate    func(e *model.Event)
		wantField string
	}{
		{
			name:      "missing title",
			mutate:    func(e *model.Event) { e.Title = "" },
			wantField: "title",
		},
		{
			name:      "whitespace-only venue",
			mutate:    func(e *model.Event) { e.Venue = "   " },
			wantField: "venue",
		},
		{
			name:      "unparseable date",
			mutate:    func(e *model.Event) { e.Date = "not a date" },
			wantField: "date",
		},
		{
			name:      "time out of range",
			mutate:    func(e *model.Event) { e.Time = "25:00" },
			wantField: "time",
		},
		{
			name:      "empty agenda",
			mutate:    func(e *model.Event) { e.Agenda = []string{} },
			wantField: "agenda",
		},
		{
			name:      "agenda with blank item",
			mutate:    func(e *model.Event) { e.Agenda = []string{"Keynote", "  "} },
			wantField: "agenda",
		},
		{
			name:      "empty tags",
			mutate:    func(e *model.Event) { e.Tags = nil },
			wantField: "tags",
		},
		{
			name:      "symbols-only title",
			mutate:    func(e *model.Event) { e.Title = "!!!" },
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validEvent()
			tt.mutate(event)

			err := v.Prepare(event, "")
			if err == nil {
				t.Fatal("Prepare succeeded, want validation error")
			}

			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("error type = %T, want ValidationErrors", err)
			}

			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.wantField, errs)
			}
		})
	}
}

func TestPrepare_SingleErrorPerField(t *testing.T) {
	v := newTestValidator(t)

	event := validEvent()
	event.Agenda = []string{"  "}

	err := v.Prepare(event, "")
	if err == nil {
		t.Fatal("Prepare succeeded, want validation error")
	}

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}

	count := 0
	for _, e := range errs {
		if e.Field == "agenda" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("agenda error count = %d, want 1: %v", count, errs)
	}
}

func TestPrepare_CollectsMultipleFieldErrors(t *testing.T) {
	v := newTestValidator(t)

	event := validEvent()
	event.Date = "garbage"
	event.Time = "99:99"

	err := v.Prepare(event, "")
	if err == nil {
		t.Fatal("Prepare succeeded, want validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "date") || !strings.Contains(msg, "time") {
		t.Errorf("error %q missing date or time field", msg)
	}
}
