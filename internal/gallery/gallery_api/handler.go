package gallery_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/gallery"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	GalleryService *gallery.Service
	Logger         *logger.Logger
}

func NewHandler(service *gallery.Service, log *logger.Logger) *Handler {
	return &Handler{GalleryService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/gallery", func(r chi.Router) {
		r.Get("/", h.ListImages)
		r.Get("/{id}", h.GetImage)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.CreateImage)
			r.Put("/{id}", h.UpdateImage)
			r.Delete("/{id}", h.DeleteImage)
		})
	})
}

func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	images, err := h.GalleryService.List(r.Context(), category)
	if err != nil {
		h.fail(w, err, "ListImages")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{
		"count":  len(images),
		"images": images,
	})
}

func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.GalleryService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "GetImage")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{"image": image})
}

func (h *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	var input models.GalleryImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	image, err := h.GalleryService.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err, "CreateImage")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Gallery image added successfully", utils.Envelope{"image": image})
}

func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.GalleryImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	image, err := h.GalleryService.Update(r.Context(), id, input)
	if err != nil {
		h.fail(w, err, "UpdateImage")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Gallery image updated successfully", utils.Envelope{"image": image})
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.GalleryService.Delete(r.Context(), id); err != nil {
		h.fail(w, err, "DeleteImage")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Gallery image deleted successfully", nil)
}

func (h *Handler) fail(w http.ResponseWriter, err error, op string) {
	if utils.IsUnexpected(err) {
		h.Logger.Error("GALLERY", fmt.Sprintf("%s: %v", op, err))
	}
	utils.RespondError(w, err, "Gallery image not found")
}
