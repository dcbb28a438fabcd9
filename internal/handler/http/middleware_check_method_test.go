// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-employee-registry/internal/app"
)

// buildRouter - минимальный роутер с коллекцией в стиле JSON-store
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Route("/employee", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("list"))
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(chi.URLParam(r, "id")))
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v"))
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "list passes through", method: http.MethodGet, path: "/employee", wantStatus: http.StatusOK, wantBody: "list"},
		{name: "create passes through", method: http.MethodPost, path: "/employee", wantStatus: http.StatusCreated},
		{name: "get by id passes through", method: http.MethodGet, path: "/employee/e1", wantStatus: http.StatusOK, wantBody: "e1"},
		{name: "delete passes through", method: http.MethodDelete, path: "/employee/e1", wantStatus: http.StatusOK},
		{name: "PUT on item is not registered", method: http.MethodPut, path: "/employee/e1", wantStatus: http.StatusNotFound, wantBody: app.MsgRecordNotFound},
		{name: "DELETE on collection is not registered", method: http.MethodDelete, path: "/employee", wantStatus: http.StatusNotFound, wantBody: app.MsgRecordNotFound},
		{name: "POST on version", method: http.MethodPost, path: "/version", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			method := http.MethodGet
			want := http.StatusOK
			if i%2 == 0 {
				method = http.MethodPatch
				want = http.StatusNotFound
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, "/employee/e1", nil))
			assert.Equal(t, want, rec.Code)
		}(i)
	}
	wg.Wait()
}
