package auth_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gameopolis-api/internal/auth"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/utils"
)

type Handler struct {
	AuthService *auth.Service
	Logger      *logger.Logger
}

func NewHandler(service *auth.Service, log *logger.Logger) *Handler {
	return &Handler{AuthService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.With(requireAuth).Get("/verify", h.Verify)
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if body.Username == "" || body.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Please provide username and password", "")
		return
	}

	token, err := h.AuthService.Login(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Logger.Warn("AUTH", "Failed login attempt for user "+body.Username)
			utils.WriteError(w, http.StatusUnauthorized, "Invalid username or password", "")
			return
		}
		h.Logger.Error("AUTH", "Login: "+err.Error())
		utils.WriteError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	h.Logger.Info("AUTH", "Admin login successful")
	utils.WriteSuccess(w, http.StatusOK, "Login successful", utils.Envelope{
		"token": token,
		"user":  map[string]string{"username": body.Username},
	})
}

// Verify confirms the bearer token is still valid; the middleware has
// already rejected anything expired or tampered with.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "Token is valid", utils.Envelope{
		"user": map[string]string{"username": auth.Username(r.Context())},
	})
}
