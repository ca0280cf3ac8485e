package event_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/events"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	EventService *events.Service
	Logger       *logger.Logger
}

func NewHandler(service *events.Service, log *logger.Logger) *Handler {
	return &Handler{EventService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler, registerLimit func(http.Handler) http.Handler) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Get("/{id}", h.GetEvent)
		r.With(registerLimit).Patch("/{id}/register", h.RegisterForEvent)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.CreateEvent)
			r.Put("/{id}", h.UpdateEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})
	})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	eventType := r.URL.Query().Get("type")

	list, err := h.EventService.List(r.Context(), status, eventType)
	if err != nil {
		h.fail(w, err, "ListEvents")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{
		"count":  len(list),
		"events": list,
	})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.EventService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "GetEvent")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{"event": event})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input models.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, err := h.EventService.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err, "CreateEvent")
		return
	}

	h.Logger.Info("EVENT", fmt.Sprintf("Created event %s (%s)", event.ID, event.Name))
	utils.WriteSuccess(w, http.StatusCreated, "Event created successfully", utils.Envelope{"event": event})
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, err := h.EventService.Update(r.Context(), id, input)
	if err != nil {
		h.fail(w, err, "UpdateEvent")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Event updated successfully", utils.Envelope{"event": event})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.EventService.Delete(r.Context(), id); err != nil {
		h.fail(w, err, "DeleteEvent")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Event deleted successfully", nil)
}

func (h *Handler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.EventService.Register(r.Context(), id)
	if err != nil {
		h.fail(w, err, "RegisterForEvent")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Registration successful", utils.Envelope{"event": event})
}

func (h *Handler) fail(w http.ResponseWriter, err error, op string) {
	if utils.IsUnexpected(err) {
		h.Logger.Error("EVENT", fmt.Sprintf("%s: %v", op, err))
	}
	utils.RespondError(w, err, "Event not found")
}
