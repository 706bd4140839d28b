// Package rest provides HTTP handlers for the car inventory API.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	invErrors "github.com/abgdnv/carstock/internal/inventory/errors"
	"github.com/abgdnv/carstock/internal/inventory/service"
	"github.com/abgdnv/carstock/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.CarService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the inventory API with the provided service.
func NewHandler(service service.CarService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the inventory service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll returns the full catalog sorted by name ascending. An empty
// catalog yields an empty JSON array, not an error.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving car list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, err.Error())
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved car list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves a car by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, invErrors.ErrCarNotFound) {
			mLogger.WarnContext(r.Context(), "Car not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Car with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving car", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, err.Error())
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved car", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new car.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	payload, ok := h.decodeAndValidate(w, r, mLogger)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating car", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Car created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update replaces the full car record. It validates the payload exactly like
// Create: an update that omits required fields is rejected, and omitted
// optional fields are reset to their defaults rather than kept.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	payload, ok := h.decodeAndValidate(w, r, mLogger)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, invErrors.ErrCarNotFound) {
			mLogger.WarnContext(r.Context(), "Car not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Car with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating car", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Car updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a car by its ID and returns a confirmation payload.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, invErrors.ErrCarNotFound) {
			mLogger.WarnContext(r.Context(), "Car not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Car with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting car", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Car deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"message": "Car deleted successfully"})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate decodes the request body into a CarPayload and validates
// it. Validation failures are answered with a field-agnostic 400 per the API
// contract. Returns the payload and a boolean indicating success.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (service.CarPayload, bool) {
	var payload service.CarPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}
	if err := h.validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Missing required fields")
			return payload, false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}
	return payload, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
