package booking_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/bookings"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	BookingService *bookings.Service
	Passes         *bookings.PassGenerator
	Logger         *logger.Logger
}

func NewHandler(service *bookings.Service, passes *bookings.PassGenerator, log *logger.Logger) *Handler {
	return &Handler{BookingService: service, Passes: passes, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler, createLimit func(http.Handler) http.Handler) {
	r.Route("/bookings", func(r chi.Router) {
		r.With(createLimit).Post("/", h.CreateBooking)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.ListBookings)
			r.Get("/{bookingId}", h.GetBooking)
			r.Get("/{bookingId}/qr", h.BookingPass)
			r.Patch("/{bookingId}/status", h.UpdateBookingStatus)
			r.Delete("/{bookingId}", h.DeleteBooking)
		})
	})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input models.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, err := h.BookingService.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err, "CreateBooking")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Booking created successfully", utils.Envelope{"booking": booking})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	list, err := h.BookingService.List(r.Context(), status)
	if err != nil {
		h.fail(w, err, "ListBookings")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{
		"count":    len(list),
		"bookings": list,
	})
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := h.BookingService.Get(r.Context(), bookingID)
	if err != nil {
		h.fail(w, err, "GetBooking")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", utils.Envelope{"booking": booking})
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, err := h.BookingService.SetStatus(r.Context(), bookingID, body.Status)
	if err != nil {
		h.fail(w, err, "UpdateBookingStatus")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Booking status updated successfully", utils.Envelope{"booking": booking})
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	if err := h.BookingService.Delete(r.Context(), bookingID); err != nil {
		h.fail(w, err, "DeleteBooking")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Booking deleted successfully", nil)
}

// BookingPass streams the booking's QR pass as a PNG.
func (h *Handler) BookingPass(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := h.BookingService.Get(r.Context(), bookingID)
	if err != nil {
		h.fail(w, err, "BookingPass")
		return
	}

	png, err := h.Passes.GeneratePass(*booking)
	if err != nil {
		h.Logger.Error("BOOKING", fmt.Sprintf("BookingPass: failed to generate QR for %s: %v", bookingID, err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) fail(w http.ResponseWriter, err error, op string) {
	if utils.IsUnexpected(err) {
		h.Logger.Error("BOOKING", fmt.Sprintf("%s: %v", op, err))
	}
	utils.RespondError(w, err, "Booking not found")
}
