package settings_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
	"gameopolis-api/internal/settings"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	SettingsService *settings.Service
	Logger          *logger.Logger
}

func NewHandler(service *settings.Service, log *logger.Logger) *Handler {
	return &Handler{SettingsService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.GetSettings)
		r.With(requireAuth).Put("/", h.UpdateSettings)
	})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.SettingsService.Get(r.Context())
	if err != nil {
		h.fail(w, err, "GetSettings")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{"settings": s})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input models.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	s, err := h.SettingsService.Update(r.Context(), input)
	if err != nil {
		h.fail(w, err, "UpdateSettings")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Settings updated successfully", utils.Envelope{"settings": s})
}

func (h *Handler) fail(w http.ResponseWriter, err error, op string) {
	if utils.IsUnexpected(err) {
		h.Logger.Error("SETTINGS", fmt.Sprintf("%s: %v", op, err))
	}
	utils.RespondError(w, err, "Settings not found")
}
