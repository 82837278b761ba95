package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"evently/internal/events/service"
	"evently/pkg/client"
	apperrors "evently/pkg/errors"
	httputil "evently/pkg/http"
	"evently/pkg/logger"
	"evently/pkg/model"
	"evently/pkg/normalize"

	"github.com/julienschmidt/httprouter"
)

type EventHandler struct {
	service   service.EventService
	imageHost *client.ImageHostClient
	log       *logger.Logger
}

// NewEventHandler serves the events API. imageHost may be nil; multipart
// submissions then accept only image URLs, not binaries.
func NewEventHandler(service service.EventService, imageHost *client.ImageHostClient, log *logger.Logger) *EventHandler {
	return &EventHandler{
		service:   service,
		imageHost: imageHost,
		log:       log,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event *model.Event
	var err error

	// Both payload shapes normalize to the same candidate record before the
	// validation pipeline sees it.
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		event, err = h.decodeJSONEvent(r)
	} else {
		event, err = h.decodeMultipartEvent(r)
	}
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), event); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, event); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *EventHandler) GetBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	event, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBySlug", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, event); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBySlug", "error", err)
	}
}

func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	events, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, events, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	var updates model.EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	updated, err := h.service.Update(r.Context(), slug, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *EventHandler) decodeJSONEvent(r *http.Request) (*model.Event, error) {
	var event model.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		return nil, apperrors.InvalidInput("Invalid request body")
	}
	return &event, nil
}

// decodeMultipartEvent builds the candidate record from a form submission.
// An uploaded image binary is forwarded to the image host and replaced by
// its returned URL before validation; a plain string field is used as-is.
func (h *EventHandler) decodeMultipartEvent(r *http.Request) (*model.Event, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, apperrors.InvalidInput("Invalid multipart form")
	}

	imageURL := strings.TrimSpace(r.FormValue("image"))

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		uploaded, uploadErr := h.uploadImage(r, header.Filename, file)
		if uploadErr != nil {
			return nil, uploadErr
		}
		imageURL = uploaded
	}

	if imageURL == "" {
		return nil, apperrors.Validation("Validation failed", map[string]any{
			"image": "image file or URL is required",
		})
	}

	event := &model.Event{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Image:       imageURL,
		Venue:       r.FormValue("venue"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Organizer:   r.FormValue("organizer"),
		Agenda:      parseListField(r, "agenda"),
		Tags:        parseListField(r, "tags"),
	}

	return event, nil
}

func (h *EventHandler) uploadImage(r *http.Request, filename string, file io.Reader) (string, error) {
	if h.imageHost == nil {
		return "", apperrors.InvalidInput("Image uploads are not enabled")
	}

	url, err := h.imageHost.Upload(r.Context(), filename, file)
	if err != nil {
		h.log.Error("image upload failed", "filename", filename, "error", err)
		return "", apperrors.Internal("Failed to upload image", err)
	}

	return url, nil
}

// parseListField accepts either a single JSON-array string or repeated form
// fields for the same key.
func parseListField(r *http.Request, key string) []string {
	values := r.Form[key]

	if len(values) == 1 {
		var parsed []string
		if err := json.Unmarshal([]byte(values[0]), &parsed); err == nil {
			return normalize.TrimEach(parsed)
		}
	}

	return normalize.TrimEach(values)
}

func (h *EventHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/events", h.Create)
	router.GET("/api/v1/events", h.GetAll)
	router.GET("/api/v1/events/:slug", h.GetBySlug)
	router.PATCH("/api/v1/events/:slug", h.Update)
}
