package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusOK, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"k": "v"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestWriteCount(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCount(rec, 2, []string{"a", "b"})

	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestWriteCountZeroIsPresent(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCount(rec, 0, []string{})

	body := decode(t, rec)
	assert.Contains(t, body, "count")
	assert.Equal(t, float64(0), body["count"])
}

func TestWriteErrorClassified(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.WithDetails(apperr.Conflict, "No valid courses to enroll in",
		[]string{"A is no longer available"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No valid courses to enroll in", body["error"])
	assert.Equal(t, []interface{}{"A is no longer available"}, body["details"])
}

func TestWriteErrorMasksInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("connection reset by mongod"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
}
