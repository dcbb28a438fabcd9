// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-registry/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.services.EmployeeService.List(r.Context())
	if err != nil {
		writeError(w, r, err, collectionEmployee, "*Handler.listEmployees")
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	respond(w, r, employees, http.StatusOK, "*Handler.listEmployees")
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	employee, err := h.services.EmployeeService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, collectionEmployee, "*Handler.getEmployee")
		return
	}

	respond(w, r, employee, http.StatusOK, "*Handler.getEmployee")
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if !decodeBody(w, r, &employee, "*Handler.createEmployee") {
		return
	}

	created, err := h.services.EmployeeService.Create(r.Context(), employee)
	if err != nil {
		writeError(w, r, err, collectionEmployee, "*Handler.createEmployee")
		return
	}
	h.metrics.RecordWrite(collectionEmployee, "create")

	respond(w, r, created, http.StatusCreated, "*Handler.createEmployee")
}

// updateEmployee replaces the whole record; the id in the path wins over
// the one in the body.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var employee models.Employee
	if !decodeBody(w, r, &employee, "*Handler.updateEmployee") {
		return
	}
	employee.ID = id

	updated, err := h.services.EmployeeService.Update(r.Context(), employee)
	if err != nil {
		writeError(w, r, err, collectionEmployee, "*Handler.updateEmployee")
		return
	}
	h.metrics.RecordWrite(collectionEmployee, "update")

	respond(w, r, updated, http.StatusOK, "*Handler.updateEmployee")
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.EmployeeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, collectionEmployee, "*Handler.deleteEmployee")
		return
	}
	h.metrics.RecordWrite(collectionEmployee, "delete")

	respond(w, r, struct{}{}, http.StatusOK, "*Handler.deleteEmployee")
}
