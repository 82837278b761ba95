package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"evently/internal/bookings/repository"
	"evently/internal/bookings/validator"
	eventsrepo "evently/internal/events/repository"
	"evently/pkg/config"
	apperrors "evently/pkg/errors"
	"evently/pkg/model"
	"evently/pkg/stream"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByEvent(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	events    eventsrepo.EventRepository
	validator *validator.BookingValidator
	notifier  *stream.Producer
	cfg       *config.Config
}

// NewBookingService wires bookings against the events repository so every
// booking is checked for a live referent before it is written. notifier may
// be nil when no brokers are configured.
func NewBookingService(
	repo repository.BookingRepository,
	events eventsrepo.EventRepository,
	validator *validator.BookingValidator,
	notifier *stream.Producer,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		events:    events,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.Prepare(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	// The referential check and the insert are not atomic; an event deleted
	// between the two can leave an orphaned booking, which reads tolerate.
	exists, err := s.events.ExistsByID(ctx, booking.EventID)
	if err != nil {
		s.cfg.Log.Error("Failed to verify event existence", "event_id", booking.EventID, "error", err)
		return apperrors.Internal("Failed to verify event", err)
	}
	if !exists {
		return apperrors.NotFoundWithID("Event", booking.EventID)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "event_id", booking.EventID, "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"event_id", booking.EventID,
	)
	s.notify("booking.created", booking.ID, booking)
	return nil
}

func (s *bookingService) GetByEvent(ctx context.Context, eventID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, 0, apperrors.InvalidInput("event_id is required")
	}
	if _, err := primitive.ObjectIDFromHex(eventID); err != nil {
		return nil, 0, apperrors.InvalidInput("event_id must be a valid MongoDB ObjectID")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByEvent(ctx, eventID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "event_id", eventID, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByEvent(ctx, eventID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "event_id", eventID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) notify(messageType, key string, payload any) {
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
