package validator

import (
	"errors"
	"testing"

	"evently/pkg/logger"
	"evently/pkg/model"
)

func newTestValidator(t *testing.T) *BookingValidator {
	t.Helper()
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func TestPrepare_NormalizesEmail(t *testing.T) {
	v := newTestValidator(t)

	booking := &model.Booking{
		EventID: "66b1f3a9c2d4e5f6a7b8c9d0",
		Email:   "  Alice@Example.COM ",
	}

	if err := v.Prepare(booking); err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	if booking.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", booking.Email, "alice@example.com")
	}
}

func TestPrepare_RejectsInvalidBookings(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		booking   model.Booking
		wantField string
	}{
		{
			name:      "missing event id",
			booking:   model.Booking{Email: "alice@example.com"},
			wantField: "eventid",
		},
		{
			name:      "malformed event id",
			booking:   model.Booking{EventID: "not-an-object-id", Email: "alice@example.com"},
			wantField: "eventid",
		},
		{
			name:      "missing email",
			booking:   model.Booking{EventID: "66b1f3a9c2d4e5f6a7b8c9d0"},
			wantField: "email",
		},
		{
			name:      "email without at sign",
			booking:   model.Booking{EventID: "66b1f3a9c2d4e5f6a7b8c9d0", Email: "alice.example.com"},
			wantField: "email",
		},
		{
			name:      "email without domain dot",
			booking:   model.Booking{EventID: "66b1f3a9c2d4e5f6a7b8c9d0", Email: "alice@example"},
			wantField: "email",
		},
		{
			name:      "email with spaces",
			booking:   model.Booking{EventID: "66b1f3a9c2d4e5f6a7b8c9d0", Email: "al ice@example.com"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := tt.booking
			err := v.Prepare(&booking)
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
