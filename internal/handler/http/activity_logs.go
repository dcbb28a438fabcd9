package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-registry/models"
)

// listActivityLogs returns entries in storage order; the client sorts.
func (h *Handler) listActivityLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.services.ActivityLogService.List(r.Context())
	if err != nil {
		writeError(w, r, err, collectionActivityLogs, "*Handler.listActivityLogs")
		return
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}

	respond(w, r, logs, http.StatusOK, "*Handler.listActivityLogs")
}

func (h *Handler) createActivityLog(w http.ResponseWriter, r *http.Request) {
	var entry models.ActivityLog
	if !decodeBody(w, r, &entry, "*Handler.createActivityLog") {
		return
	}

	created, err := h.services.ActivityLogService.Create(r.Context(), entry)
	if err != nil {
		writeError(w, r, err, collectionActivityLogs, "*Handler.createActivityLog")
		return
	}
	h.metrics.RecordWrite(collectionActivityLogs, "create")

	respond(w, r, created, http.StatusCreated, "*Handler.createActivityLog")
}

func (h *Handler) deleteActivityLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.ActivityLogService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, collectionActivityLogs, "*Handler.deleteActivityLog")
		return
	}
	h.metrics.RecordWrite(collectionActivityLogs, "delete")

	respond(w, r, struct{}{}, http.StatusOK, "*Handler.deleteActivityLog")
}
