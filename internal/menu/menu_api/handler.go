package menu_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/menu"
	"gameopolis-api/internal/models"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	MenuService *menu.Service
	Logger      *logger.Logger
}

func NewHandler(service *menu.Service, log *logger.Logger) *Handler {
	return &Handler{MenuService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", h.ListMenu)
		r.Get("/{id}", h.GetMenuItem)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.CreateMenuItem)
			r.Put("/{id}", h.UpdateMenuItem)
			r.Delete("/{id}", h.DeleteMenuItem)
		})
	})
}

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var available *bool
	if raw := r.URL.Query().Get("available"); raw != "" {
		v := raw == "true"
		available = &v
	}

	grouped, count, err := h.MenuService.List(r.Context(), category, available)
	if err != nil {
		h.fail(w, err, "ListMenu")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{
		"count": count,
		"menu":  grouped,
	})
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.MenuService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "GetMenuItem")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{"menuItem": item})
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var input models.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	item, err := h.MenuService.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err, "CreateMenuItem")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Menu item created successfully", utils.Envelope{"menuItem": item})
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	item, err := h.MenuService.Update(r.Context(), id, input)
	if err != nil {
		h.fail(w, err, "UpdateMenuItem")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Menu item updated successfully", utils.Envelope{"menuItem": item})
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.MenuService.Delete(r.Context(), id); err != nil {
		h.fail(w, err, "DeleteMenuItem")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Menu item deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error, op string) {
	if utils.IsUnexpected(err) {
		h.Logger.Error("MENU", fmt.Sprintf("%s: %v", op, err))
	}
	utils.RespondError(w, err, "Menu item not found")
}
