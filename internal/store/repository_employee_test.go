// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newTestEmployeeRepo(t *testing.T) (*employeeRepository, sqlmock.Sqlmock) {
	// sqlite-плейсхолдеры "?" проверяются здесь, "$n" в тестах пользователей
	db, mock := newMockDB(t, config.DriverSQLite)
	return &employeeRepository{db: db, logger: logger.Nop()}, mock
}

func sampleEmployee() models.Employee {
	return models.Employee{ID: "e1", Name: "Bob", Designation: "Engineer", Phone: "123", DOB: "1990-01-01", Email: "bob@corp.io"}
}

func employeeRow(e models.Employee) []driver.Value {
	return []driver.Value{e.ID, e.Name, e.Designation, e.Phone, e.DOB, e.Email, e.Photo}
}

func TestEmployeeRepository_List(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)
	e := sampleEmployee()

	mock.ExpectQuery(`SELECT (.+) FROM employees ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(employeeRow(e)...))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{e}, got)
}

func TestEmployeeRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e1"))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestEmployeeRepository_Get(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)
	e := sampleEmployee()

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id = \?`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(employeeRow(e)...))

	got, err := repo.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEmployeeRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)

	mock.ExpectQuery("SELECT").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeRepository_Create(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)
	e := sampleEmployee()

	mock.ExpectExec(`INSERT INTO employees \(id,name,designation,phone,dob,email,photo\) VALUES \(\?,\?,\?,\?,\?,\?,\?\)`).
		WithArgs(employeeRow(e)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEmployeeRepository_Update(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)
	e := sampleEmployee()

	mock.ExpectExec(`UPDATE employees SET name = \?, designation = \?, phone = \?, dob = \?, email = \?, photo = \? WHERE id = \?`).
		WithArgs(e.Name, e.Designation, e.Phone, e.DOB, e.Email, e.Photo, e.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Update(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)

	mock.ExpectExec("UPDATE employees").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), sampleEmployee())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)

	mock.ExpectExec(`DELETE FROM employees WHERE id = \?`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "e1"))
}

func TestEmployeeRepository_Delete_Errors(t *testing.T) {
	repo, mock := newTestEmployeeRepo(t)

	mock.ExpectExec("DELETE FROM employees").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "e1"), ErrNotFound)

	mock.ExpectExec("DELETE FROM employees").WillReturnError(errors.New("locked"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "e1"), ErrExecutingStatement)
}
