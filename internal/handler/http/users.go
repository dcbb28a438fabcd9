package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-registry/models"
)

// listUsers serves GET /users and GET /users?email=.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err, collectionUsers, "*Handler.listUsers")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	respond(w, r, users, http.StatusOK, "*Handler.listUsers")
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user, "*Handler.createUser") {
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		writeError(w, r, err, collectionUsers, "*Handler.createUser")
		return
	}
	h.metrics.RecordWrite(collectionUsers, "create")

	respond(w, r, created, http.StatusCreated, "*Handler.createUser")
}

func (h *Handler) patchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.UserPatch
	if !decodeBody(w, r, &patch, "*Handler.patchUser") {
		return
	}

	updated, err := h.services.UserService.Patch(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err, collectionUsers, "*Handler.patchUser")
		return
	}
	h.metrics.RecordWrite(collectionUsers, "patch")

	respond(w, r, updated, http.StatusOK, "*Handler.patchUser")
}
