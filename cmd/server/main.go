package main

import (
	bookingshandler "evently/internal/bookings/handler"
	bookingsrepo "evently/internal/bookings/repository"
	bookingsservice "evently/internal/bookings/service"
	bookingsvalidator "evently/internal/bookings/validator"
	eventshandler "evently/internal/events/handler"
	eventsrepo "evently/internal/events/repository"
	eventsservice "evently/internal/events/service"
	eventsvalidator "evently/internal/events/validator"
	"evently/pkg/app"
	"evently/pkg/config"
	"evently/pkg/stream"
)

const ServiceName = "evently"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Evently server")

	eventRepo := eventsrepo.NewMongoEventRepository(cfg)
	eventService := eventsservice.NewEventService(
		eventRepo,
		eventsvalidator.NewEventValidator(cfg.Log),
		newProducer(cfg, cfg.KafkaEventsTopic),
		cfg,
	)

	bookingService := bookingsservice.NewBookingService(
		bookingsrepo.NewMongoBookingRepository(cfg),
		eventRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		newProducer(cfg, cfg.KafkaBookingTopic),
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		eventshandler.NewHealthHandler(cfg.Client, cfg.Log),
		eventshandler.NewEventHandler(eventService, cfg.Client.ImageHost, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

// newProducer returns nil when no brokers are configured; services treat a
// nil producer as notifications disabled.
func newProducer(cfg *config.Config, topic string) *stream.Producer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}

	producer, err := stream.NewProducer(cfg.KafkaBrokers, topic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize producer", "topic", topic, "error", err)
	}
	return producer
}
