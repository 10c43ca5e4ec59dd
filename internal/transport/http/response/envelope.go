package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	IsSuccess  bool      `json:"isSuccess"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// Response is the body written for every successful request.
type Response struct {
	IsSuccess  bool        `json:"isSuccess"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// OK writes a success envelope. data may be nil.
func OK(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{
		IsSuccess:  true,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

// Status writes an error envelope for transport-level rejections that are not
// domain failures, such as rate limiting.
func Status(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
