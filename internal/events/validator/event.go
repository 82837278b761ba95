package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"evently/pkg/logger"
	"evently/pkg/model"
	"evently/pkg/normalize"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

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

type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	v := validator.New()

	if err := v.RegisterValidation("nonblank", validateNonBlank); err != nil {
		log.Fatal("Failed to register 'nonblank' validator", "error", err)
	}
	if err := v.RegisterValidation("nonblank_items", validateNonBlankItems); err != nil {
		log.Fatal("Failed to register 'nonblank_items' validator", "error", err)
	}

	log.Info("Event validator initialized successfully")

	return &EventValidator{
		validate: v,
		logger:   log,
	}
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateNonBlankItems(fl validator.FieldLevel) bool {
	items, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	return normalize.AllNonEmpty(items)
}

// Prepare is the gate every event write passes through before persistence.
// It trims all string fields, checks required-field presence, canonicalizes
// date and time, regenerates the slug when the title changed (or no slug is
// set), and validates agenda and tags. The in-flight record is mutated to its
// canonical form; on any failure the whole write is rejected and nothing is
// persisted. prevTitle is the last persisted title, empty on create.
func (v *EventValidator) Prepare(event *model.Event, prevTitle string) error {
	v.trimFields(event)

	var errs ValidationErrors

	if err := v.validate.Struct(event); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			errs = append(errs, v.translateValidationErrors(validationErrs)...)
		} else {
			return err
		}
	}

	if event.Date != "" {
		date, err := normalize.Date(event.Date)
		if err != nil {
			errs = append(errs, ValidationError{Field: "date", Message: err.Error()})
		} else {
			event.Date = date
		}
	}

	if event.Time != "" {
		clock, err := normalize.Time(event.Time)
		if err != nil {
			errs = append(errs, ValidationError{Field: "time", Message: err.Error()})
		} else {
			event.Time = clock
		}
	}

	// Regenerate the slug only when the title changed or no slug exists, so
	// existing public URLs survive unrelated updates.
	if event.Title != "" && (event.Title != prevTitle || event.Slug == "") {
		event.Slug = normalize.Slug(event.Title)
	}
	if event.Slug == "" && event.Title != "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title must contain at least one letter or digit"})
	}
	if event.Slug != "" && !slugPattern.MatchString(event.Slug) {
		errs = append(errs, ValidationError{Field: "slug", Message: "slug may only contain lowercase letters, numbers, and hyphens"})
	}

	event.Agenda = normalize.TrimEach(event.Agenda)
	if !normalize.AllNonEmpty(event.Agenda) {
		errs = setFieldError(errs, "agenda", "agenda must be a non-empty array of non-empty strings")
	}

	event.Tags = normalize.TrimEach(event.Tags)
	if !normalize.AllNonEmpty(event.Tags) {
		errs = setFieldError(errs, "tags", "tags must be a non-empty array of non-empty strings")
	} else {
		event.Tags = normalize.Dedupe(event.Tags)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *EventValidator) ValidateUpdate(update *model.EventUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *EventValidator) trimFields(event *model.Event) {
	event.Title = strings.TrimSpace(event.Title)
	event.Slug = strings.TrimSpace(event.Slug)
	event.Description = strings.TrimSpace(event.Description)
	event.Overview = strings.TrimSpace(event.Overview)
	event.Image = strings.TrimSpace(event.Image)
	event.Venue = strings.TrimSpace(event.Venue)
	event.Location = strings.TrimSpace(event.Location)
	event.Date = strings.TrimSpace(event.Date)
	event.Time = strings.TrimSpace(event.Time)
	event.Mode = strings.TrimSpace(event.Mode)
	event.Audience = strings.TrimSpace(event.Audience)
	event.Organizer = strings.TrimSpace(event.Organizer)
}

func (v *EventValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required and must be a non-empty string", field)
		case "nonblank":
			message = fmt.Sprintf("%s must be a non-empty string", field)
		case "nonblank_items":
			message = fmt.Sprintf("%s must be a non-empty array of non-empty strings", field)
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

// setFieldError replaces any struct-tag error already recorded for field so
// the caller sees a single message per field.
func setFieldError(errs ValidationErrors, field, message string) ValidationErrors {
	for i, e := range errs {
		if e.Field == field {
			errs[i].Message = message
			return errs
		}
	}
	return append(errs, ValidationError{Field: field, Message: message})
}
