package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	eventserrors "evently/internal/events/errors"
	"evently/internal/events/validator"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/logger"
	"evently/pkg/model"
)

type mockEventRepository struct {
	createFunc     func(ctx context.Context, event *model.Event) error
	findBySlugFunc func(ctx context.Context, slug string) (*model.Event, error)
	findAllFunc    func(ctx context.Context, limit int, offset int64) ([]*model.Event, error)
	updateFunc     func(ctx context.Context, id string, event *model.Event) error
	existsFunc     func(ctx context.Context, id string) (bool, error)
	countFunc      func(ctx context.Context) (int64, error)
}

func (m *mockEventRepository) Create(ctx context.Context, event *model.Event) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	if m.findBySlugFunc != nil {
		return m.findBySlugFunc(ctx, slug)
	}
	return nil, eventserrors.ErrNotFound
}

func (m *mockEventRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Event, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Event{}, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, event *model.Event) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, event)
	}
	return nil
}

func (m *mockEventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

func newTestService(repo *mockEventRepository, cfg *config.Config) EventService {
	return NewEventService(repo, validator.NewEventValidator(cfg.Log), nil, cfg)
}

func testEvent() *model.Event {
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
		Agenda:      []string{"Keynote"},
		Tags:        []string{"go"},
	}
}

func TestCreate_Success(t *testing.T) {
	cfg := newTestConfig()
	repo := &mockEventRepository{
		createFunc: func(ctx context.Context, event *model.Event) error {
			event.ID = "66b1f3a9c2d4e5f6a7b8c9d0"
			return nil
		},
	}
	svc := newTestService(repo, cfg)

	event := testEvent()
	if err := svc.Create(context.Background(), event); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if event.Slug != "go-conference-2026" {
		t.Errorf("slug = %q, want %q", event.Slug, "go-conference-2026")
	}
	if event.ID == "" {
		t.Error("ID not set after create")
	}
}

func TestCreate_DuplicateSlugMapsToConflict(t *testing.T) {
	cfg := newTestConfig()
	repo := &mockEventRepository{
		createFunc: func(ctx context.Context, event *model.Event) error {
			return fmt.Errorf("%w: %s", eventserrors.ErrDuplicateSlug, event.Slug)
		},
	}
	svc := newTestService(repo, cfg)

	err := svc.Create(context.Background(), testEvent())
	if err == nil {
		t.Fatal("Create succeeded, want conflict")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeConflict)
	}
	if appErr.StatusCode() != 409 {
		t.Errorf("status = %d, want 409", appErr.StatusCode())
	}
}

func TestCreate_InvalidEventNeverReachesRepository(t *testing.T) {
	cfg := newTestConfig()
	called := false
	repo := &mockEventRepository{
		createFunc: func(ctx context.Context, event *model.Event) error {
			called = true
			return nil
		},
	}
	svc := newTestService(repo, cfg)

	event := testEvent()
	event.Date = "garbage"

	err := svc.Create(context.Background(), event)
	if err == nil {
		t.Fatal("Create succeeded, want validation error")
	}
	if called {
		t.Error("repository was called for an invalid record")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeValidation)
	}
}

func TestGetBySlug_NormalizesInput(t *testing.T) {
	cfg := newTestConfig()
	var seen string
	repo := &mockEventRepository{
		findBySlugFunc: func(ctx context.Context, slug string) (*model.Event, error) {
			seen = slug
			return &model.Event{Slug: slug}, nil
		},
	}
	svc := newTestService(repo, cfg)

	if _, err := svc.GetBySlug(context.Background(), "  Go-Conference-2026  "); err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if seen != "go-conference-2026" {
		t.Errorf("repository saw slug %q, want %q", seen, "go-conference-2026")
	}
}

func TestGetBySlug_Errors(t *testing.T) {
	cfg := newTestConfig()
	repo := &mockEventRepository{}
	svc := newTestService(repo, cfg)

	tests := []struct {
		name     string
		slug     string
		wantCode string
	}{
		{name: "empty slug", slug: "   ", wantCode: apperrors.CodeInvalidInput},
		{name: "illegal characters", slug: "bad_slug!", wantCode: apperrors.CodeInvalidInput},
		{name: "unknown slug", slug: "missing-event", wantCode: apperrors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetBySlug(context.Background(), tt.slug)
			if err == nil {
				t.Fatal("GetBySlug succeeded, want error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestGetAll_ReturnsCountAndPage(t *testing.T) {
	cfg := newTestConfig()
	repo := &mockEventRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Event, error) {
			return []*model.Event{{Slug: "one"}, {Slug: "two"}}, nil
		},
	}
	svc := newTestService(repo, cfg)

	events, count, err := svc.GetAll(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d, want 42", count)
	}
	if len(events) != 2 {
		t.Errorf("len(events) = %d, want 2", len(events))
	}
}

func TestUpdate_TitleChangeRegeneratesSlug(t *testing.T) {
	cfg := newTestConfig()
	existing := testEvent()
	existing.ID = "66b1f3a9c2d4e5f6a7b8c9d0"
	existing.Slug = "go-conference-2026"

	var persisted *model.Event
	repo := &mockEventRepository{
		findBySlugFunc: func(ctx context.Context, slug string) (*model.Event, error) {
			clone := *existing
			return &clone, nil
		},
		updateFunc: func(ctx context.Context, id string, event *model.Event) error {
			persisted = event
			return nil
		},
	}
	svc := newTestService(repo, cfg)

	updated, err := svc.Update(context.Background(), "go-conference-2026", &model.EventUpdate{
		Title: "Rust Conference 2026",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Slug != "rust-conference-2026" {
		t.Errorf("slug = %q, want regenerated", updated.Slug)
	}
	if persisted == nil || persisted.Slug != "rust-conference-2026" {
		t.Error("regenerated slug not persisted")
	}
}

func TestUpdate_UnrelatedChangeKeepsSlug(t *testing.T) {
	cfg := newTestConfig()
	existing := testEvent()
	existing.ID = "66b1f3a9c2d4e5f6a7b8c9d0"
	existing.Slug = "go-conference-2026"

	repo := &mockEventRepository{
		findBySlugFunc: func(ctx context.Context, slug string) (*model.Event, error) {
			clone := *existing
			return &clone, nil
		},
	}
	svc := newTestService(repo, cfg)

	updated, err := svc.Update(context.Background(), "go-conference-2026", &model.EventUpdate{
		Location: "Munich",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Slug != "go-conference-2026" {
		t.Errorf("slug = %q, want unchanged", updated.Slug)
	}
	if updated.Location != "Munich" {
		t.Errorf("location = %q, want Munich", updated.Location)
	}
}

func TestUpdate_UnknownSlug(t *testing.T) {
	cfg := newTestConfig()
	repo := &mockEventRepository{}
	svc := newTestService(repo, cfg)

	_, err := svc.Update(context.Background(), "missing-event", &model.EventUpdate{Location: "Munich"})
	if err == nil {
		t.Fatal("Update succeeded, want not found")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeNotFound)
	}
}
