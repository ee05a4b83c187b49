// Package response carries the JSON envelope every handler writes.
package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta describes the page window of a list response.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data, Meta: meta})
}

func Error(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	JSON(w, statusCode, Response{Success: false, Message: message, Error: details})
}

// ValidationError reports per-field failures from the request validator.
func ValidationError(w http.ResponseWriter, fields interface{}) {
	JSON(w, http.StatusBadRequest, Response{Success: false, Message: "Validation failed", Error: fields})
}

func Unauthorized(w http.ResponseWriter, message string) {
	errorWithDefault(w, http.StatusUnauthorized, message, "Unauthorized")
}

func Forbidden(w http.ResponseWriter, message string) {
	errorWithDefault(w, http.StatusForbidden, message, "Forbidden")
}

func NotFound(w http.ResponseWriter, message string) {
	errorWithDefault(w, http.StatusNotFound, message, "Resource not found")
}

func Conflict(w http.ResponseWriter, message string) {
	errorWithDefault(w, http.StatusConflict, message, "Conflict")
}

func InternalServerError(w http.ResponseWriter, message string) {
	errorWithDefault(w, http.StatusInternalServerError, message, "Internal server error")
}

func errorWithDefault(w http.ResponseWriter, statusCode int, message, fallback string) {
	if message == "" {
		message = fallback
	}
	Error(w, statusCode, message, nil)
}
