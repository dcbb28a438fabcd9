// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-registry/internal/app"
)

// CheckHTTPMethod returns the handler to register via [chi.Mux.MethodNotAllowed].
//
// chi calls it only when the path is known but no handler accepts the
// method. It answers 404 with the "record not found" body instead of chi's
// default 405, the way the JSON-store backend the client was written
// against behaves. The request is never routed again.
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgRecordNotFound, http.StatusNotFound)
	}
}
