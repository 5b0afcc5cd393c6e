package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/apperr"
)

// SuccessResponse is the envelope for every successful reply.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed reply.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// WriteMessage is WriteSuccess with a human-readable message.
func WriteMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, SuccessResponse{Success: true, Message: message, Data: data})
}

// WriteCount is WriteSuccess for list replies that report their length.
func WriteCount(w http.ResponseWriter, count int, data interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Count: &count, Data: data})
}

// WriteError maps err through the apperr taxonomy and writes the error
// envelope. Unclassified errors become a plain 500 without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	msg := err.Error()
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		msg = "Internal server error"
	}
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg, Details: apperr.DetailsOf(err)})
}
