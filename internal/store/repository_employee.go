// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

var employeeColumns = []string{"id", "name", "designation", "phone", "dob", "email", "photo"}

type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] over the "employees" table.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(employeeColumns...).
		From(models.Employee{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error querying employees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err = rows.Scan(&e.ID, &e.Name, &e.Designation, &e.Phone, &e.DOB, &e.Email, &e.Photo); err != nil {
			log.Err(err).Str("func", "*employeeRepository.List").Msg("error scanning employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employees, nil
}

func (r *employeeRepository) Get(ctx context.Context, id string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(employeeColumns...).
		From(models.Employee{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var e models.Employee
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.Name, &e.Designation, &e.Phone, &e.DOB, &e.Email, &e.Photo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.Get").Str("id", id).Msg("error reading employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(e.TableName()).
		Columns(employeeColumns...).
		Values(e.ID, e.Name, e.Designation, e.Phone, e.DOB, e.Email, e.Photo).
		ToSql()
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error inserting employee")
		if isUniqueViolation(err) {
			return models.Employee{}, ErrAlreadyExists
		}
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return e, nil
}

// Update replaces every column of the record with e.ID.
func (r *employeeRepository) Update(ctx context.Context, e models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(e.TableName()).
		Set("name", e.Name).
		Set("designation", e.Designation).
		Set("phone", e.Phone).
		Set("dob", e.DOB).
		Set("email", e.Email).
		Set("photo", e.Photo).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Update").Str("id", e.ID).Msg("error updating employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Employee{}, ErrNotFound
	}

	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, models.Employee{}.TableName(), id)
}

// deleteByID removes one row of table and reports [ErrNotFound] when nothing matched.
func deleteByID(ctx context.Context, db *DB, table, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := db.builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "deleteByID").Str("table", table).Str("id", id).Msg("error deleting row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}
