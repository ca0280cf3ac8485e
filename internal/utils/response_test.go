package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameopolis-api/internal/models"
	"gameopolis-api/internal/utils"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccessMergesResourceKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteSuccess(rec, http.StatusCreated, "Event created successfully", utils.Envelope{
		"event": map[string]string{"id": "evt-1"},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Event created successfully", body["message"])
	assert.Contains(t, body, "event")
}

func TestWriteSuccessOmitsEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteSuccess(rec, http.StatusOK, "", utils.Envelope{"count": 0})

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "message")
}

func TestWriteErrorOmitsEmptyDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, http.StatusNotFound, "Booking not found", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Booking not found", body["message"])
	assert.NotContains(t, body, "error")
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", models.NewValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{"not found", models.ErrNotFound, http.StatusNotFound, "Event not found"},
		{"capacity", models.ErrCapacityFull, http.StatusBadRequest, "Event is fully booked"},
		{"conflict", models.ErrConflict, http.StatusConflict, ""},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			utils.RespondError(rec, tc.err, "Event not found")
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, decode(t, rec)["message"])
			}
		})
	}
}

func TestIsUnexpected(t *testing.T) {
	assert.False(t, utils.IsUnexpected(models.ErrNotFound))
	assert.False(t, utils.IsUnexpected(models.NewValidationError("bad")))
	assert.False(t, utils.IsUnexpected(models.ErrCapacityFull))
	assert.True(t, utils.IsUnexpected(errors.New("disk on fire")))
}
