package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	eventserrors "evently/internal/events/errors"
	"evently/internal/events/repository"
	"evently/internal/events/validator"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/model"
	"evently/pkg/stream"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type EventService interface {
	Create(ctx context.Context, event *model.Event) error
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error)
	Update(ctx context.Context, slug string, updates *model.EventUpdate) (*model.Event, error)
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.EventValidator
	notifier  *stream.Producer
	cfg       *config.Config
}

// NewEventService wires the persistence-gate pipeline. notifier may be nil
// when no brokers are configured.
func NewEventService(
	repo repository.EventRepository,
	validator *validator.EventValidator,
	notifier *stream.Producer,
	cfg *config.Config,
) EventService {
	return &eventService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *eventService) Create(ctx context.Context, event *model.Event) error {
	// Prepare mutates date, time, and slug to canonical form; any failure
	// rejects the write before it reaches the repository.
	if err := s.validator.Prepare(event, ""); err != nil {
		s.cfg.Log.Warn("Event validation failed", "error", err)
		return apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, eventserrors.ErrDuplicateSlug) {
			return apperrors.Conflict("An event with this title already exists")
		}
		s.cfg.Log.Error("Failed to create event", "error", err)
		return apperrors.Internal("Failed to create event", err)
	}

	s.cfg.Log.Info("Event created successfully",
		"id", event.ID,
		"slug", event.Slug,
		"date", event.Date,
	)
	s.notify("event.created", event.ID, event)
	return nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, apperrors.InvalidInput("Slug cannot be empty")
	}
	if !slugPattern.MatchString(slug) {
		return nil, apperrors.InvalidInput("Slug may only contain lowercase letters, numbers, and hyphens")
	}

	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Event", slug)
		}
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *eventService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Event, int64, error) {
	var count int64
	var events []*model.Event
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count events", "error", errCount)
			errCount = apperrors.Internal("Failed to count events", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		events, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list events", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve events", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return events, count, nil
}

func (s *eventService) Update(ctx context.Context, slug string, updates *model.EventUpdate) (*model.Event, error) {
	existing, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Event update validation failed", "slug", slug, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeEventUpdates(existing, updates)

	if err := s.validator.Prepare(merged, existing.Title); err != nil {
		s.cfg.Log.Warn("Event validation failed", "slug", slug, "error", err)
		return nil, apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, existing.ID, merged); err != nil {
		if errors.Is(err, eventserrors.ErrDuplicateSlug) {
			return nil, apperrors.Conflict("An event with this title already exists")
		}
		if errors.Is(err, eventserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Event", slug)
		}
		s.cfg.Log.Error("Failed to update event", "slug", slug, "error", err)
		return nil, apperrors.Internal("Failed to update event", err)
	}

	s.cfg.Log.Info("Event updated successfully", "id", merged.ID, "slug", merged.Slug)
	return merged, nil
}

func (s *eventService) mergeEventUpdates(existing *model.Event, updates *model.EventUpdate) *model.Event {
	merged := *existing

	if updates.Title != "" {
		merged.Title = updates.Title
	}
	if updates.Description != "" {
		merged.Description = updates.Description
	}
	if updates.Overview != "" {
		merged.Overview = updates.Overview
	}
	if updates.Image != "" {
		merged.Image = updates.Image
	}
	if updates.Venue != "" {
		merged.Venue = updates.Venue
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.Date != "" {
		merged.Date = updates.Date
	}
	if updates.Time != "" {
		merged.Time = updates.Time
	}
	if updates.Mode != "" {
		merged.Mode = updates.Mode
	}
	if updates.Audience != "" {
		merged.Audience = updates.Audience
	}
	if updates.Organizer != "" {
		merged.Organizer = updates.Organizer
	}
	if updates.Agenda != nil {
		merged.Agenda = *updates.Agenda
	}
	if updates.Tags != nil {
		merged.Tags = *updates.Tags
	}

	return &merged
}

// notify publishes a created-record message off the request path. Failures
// are logged and never affect the write that triggered them.
func (s *eventService) notify(messageType, key string, payload any) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.notifier.Publish(ctx, messageType, key, payload); err != nil {
			s.cfg.Log.Warn("Failed to publish notification", "type", messageType, "key", key, "error", err)
		}
	}()
}
