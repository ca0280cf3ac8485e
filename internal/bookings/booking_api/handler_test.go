package booking_api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"gameopolis-api/internal/auth"
	"gameopolis-api/internal/bookings"
	"gameopolis-api/internal/bookings/booking_api"
	bookingdb "gameopolis-api/internal/bookings/db"
	"gameopolis-api/internal/config"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
)

func noLimit(next http.Handler) http.Handler { return next }

func setupServer(t *testing.T) (*httptest.Server, string) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	_, err = bunDB.NewCreateTable().Model((*models.Booking)(nil)).Exec(context.Background())
	require.NoError(t, err)

	log := logger.NewLogger()
	authService := auth.NewService(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "gameopolis123",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})

	svc := bookings.NewService(&bookingdb.DB{Bun: bunDB}, nil, log, 12)
	handler := booking_api.NewHandler(svc, bookings.NewPassGenerator("test-qr-secret"), log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, authService.Require, noLimit)
	})

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()
		bunDB.Close()
	})

	token, err := authService.Login("admin", "gameopolis123")
	require.NoError(t, err)
	return server, token
}

func doJSON(t *testing.T, method, url, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	body := bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

func submitBooking(t *testing.T, server *httptest.Server) string {
	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/bookings", "", map[string]interface{}{
		"name":    "Arjun Kumar",
		"phone":   "+91 90000 00000",
		"email":   "arjun@example.com",
		"date":    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"time":    "18:30",
		"players": 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	booking := body["booking"].(map[string]interface{})
	assert.Equal(t, "pending", booking["status"])
	return booking["bookingId"].(string)
}

func TestBookingSubmissionIsPublic(t *testing.T) {
	server, _ := setupServer(t)

	id := submitBooking(t, server)
	assert.Equal(t, "BK001", id)
}

func TestBookingAdminRoutesRequireAuth(t *testing.T) {
	server, _ := setupServer(t)
	submitBooking(t, server)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPatch, server.URL+"/api/bookings/BK001/status", "", map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, server.URL+"/api/bookings/BK001", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookingStatusFlowOverHTTP(t *testing.T) {
	server, token := setupServer(t)
	id := submitBooking(t, server)

	resp, body := doJSON(t, http.MethodPatch, server.URL+"/api/bookings/"+id+"/status", token, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", body["booking"].(map[string]interface{})["status"])

	// Backward move is refused.
	resp, body = doJSON(t, http.MethodPatch, server.URL+"/api/bookings/"+id+"/status", token, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, _ = doJSON(t, http.MethodPatch, server.URL+"/api/bookings/"+id+"/status", token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Completed is terminal.
	resp, _ = doJSON(t, http.MethodPatch, server.URL+"/api/bookings/"+id+"/status", token, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookingListAndGet(t *testing.T) {
	server, token := setupServer(t)
	id := submitBooking(t, server)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/bookings/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Arjun Kumar", body["booking"].(map[string]interface{})["name"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/bookings/BK404", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Booking not found", body["message"])
}

func TestBookingPassReturnsPNG(t *testing.T) {
	server, token := setupServer(t)
	id := submitBooking(t, server)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/bookings/"+id+"/qr", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestBookingRejectsTooManyPlayers(t *testing.T) {
	server, _ := setupServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/bookings", "", map[string]interface{}{
		"name":    "Big Group",
		"phone":   "+91 90000 00000",
		"email":   "group@example.com",
		"date":    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"time":    "18:30",
		"players": 30,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
