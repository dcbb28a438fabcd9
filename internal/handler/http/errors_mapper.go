package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-employee-registry/internal/app"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFor returns the response body for status. The client matches on
// these texts, e.g. a 409 from /users means the email is already taken.
func messageFor(status int, collection string) string {
	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	case http.StatusNotFound:
		return app.MsgRecordNotFound
	case http.StatusConflict:
		if collection == collectionUsers {
			return app.MsgEmailAlreadyExists
		}
		return app.MsgRecordAlreadyExists
	default:
		return app.MsgInternalServerError
	}
}

// writeError logs err and answers with the mapped status and plain-text body.
func writeError(w http.ResponseWriter, r *http.Request, err error, collection, fn string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	http.Error(w, messageFor(status, collection), status)
}
