package http

import "net/http"

// responseWriter records the status and body size written by the wrapped
// handler for the access log. WriteHeader reaches the underlying writer at
// most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until the handler writes a header or body
	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 header when none was written.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
