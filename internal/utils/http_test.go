package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{
			name:   "record",
			data:   models.Employee{ID: "1", Name: "Ann"},
			status: http.StatusCreated,
			want:   `{"id":"1","name":"Ann","designation":"","phone":"","dob":"","email":""}`,
		},
		{
			name:   "nil collection is an empty array",
			data:   []models.Employee(nil),
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "empty collection",
			data:   []models.ActivityLog{},
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "empty object",
			data:   struct{}{},
			status: http.StatusOK,
			want:   `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.Equal(t, w.Body.Len(), n)
		})
	}
}

func TestWriteJSON_NilInterface(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteJSON_EncodeError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, math.Inf(1), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error writing data to JSON")
}
