package common

import (
	"encoding/json"
	"net/http"
)

// Response is the success envelope of the catalog API
type Response struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondData sends {"data": data}
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Response{Data: data})
}

// RespondMessage sends {"message": message, "data": data}
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Message: message, Data: data})
}
