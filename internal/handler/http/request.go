package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-employee-registry/internal/app"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
)

// decodeBody reads the JSON request body into dst. On failure it answers 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// pathID returns the {id} URL parameter. An empty id answers 400.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, app.MsgNoIDProvided, http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int, fn string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
