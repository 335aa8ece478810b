package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and sends it as the response body with the given
// status code. The Content-Type header is set before the status line is
// written.
//
// Marshaling failures answer with 500; bodies that fail mid-write cannot be
// retracted, so the returned error is informational only.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}

	return nil
}
