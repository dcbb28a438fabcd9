// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Employee is a registry record owned by the backend under /employee.
type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	DOB         string `json:"dob"`
	Email       string `json:"email"`
	Photo       string `json:"photo,omitempty"`
}

// TableName returns the name of the backend table that stores employees.
func (e Employee) TableName() string {
	return "employees"
}
