package validator

import (
	"errors"
	"fmt"
	"strings"

	"evently/pkg/logger"
	"evently/pkg/model"
	"evently/pkg/normalize"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Prepare gates every booking write. The email is lowercased and trimmed in
// place before the format check, so the persisted value is always canonical.
func (v *BookingValidator) Prepare(booking *model.Booking) error {
	booking.EventID = strings.TrimSpace(booking.EventID)
	booking.Email = normalize.Email(booking.Email)

	var errs ValidationErrors

	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			errs = append(errs, v.translateValidationErrors(validationErrs)...)
		} else {
			return err
		}
	}

	if booking.Email != "" && !normalize.ValidEmail(booking.Email) {
		errs = setFieldError(errs, "email", "email must be a valid email address")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", field)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return validationErrors
}

func setFieldError(errs ValidationErrors, field, message string) ValidationErrors {
	for i, e := range errs {
		if e.Field == field {
			errs[i].Message = message
			return errs
		}
	}
	return append(errs, ValidationError{Field: field, Message: message})
}
