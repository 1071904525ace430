// file: common/response.go

package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper every endpoint answers with.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes the envelope with the given status code. A 204 carries no
// body, so the envelope is skipped there.
func Respond(w http.ResponseWriter, code int, success bool, message string, data interface{}) {
	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Envelope{
		Success: success,
		Message: message,
		Data:    data,
	})
}
