package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

// ContentTypeJSON is the media type of every registry response body.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON encodes data as the response body with the given status and
// returns the number of body bytes written.
//
// Collections are never sent as null: a nil slice is written as []. When data
// cannot be encoded the client gets 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice && v.IsNil() {
		data = []struct{}{}
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
