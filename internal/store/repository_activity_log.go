package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

var activityLogColumns = []string{"id", "user_id", "user_email", "action", "employee_id", "employee_name", "logged_at", "details"}

type activityLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityLogRepository constructs an [ActivityLogRepository] over the "activity_logs" table.
func NewActivityLogRepository(db *DB, logger *logger.Logger) ActivityLogRepository {
	logger.Debug().Msg("creating activity log repository")
	return &activityLogRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the entries in insertion order. Ordering for display is the client's job.
func (r *activityLogRepository) List(ctx context.Context) ([]models.ActivityLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(activityLogColumns...).
		From(models.ActivityLog{}.TableName()).
		OrderBy("logged_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityLogRepository.List").Msg("error querying activity logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ActivityLog, 0)
	for rows.Next() {
		var (
			entry      models.ActivityLog
			action     string
			employeeID sql.NullString
			loggedAt   string
		)
		if err = rows.Scan(&entry.ID, &entry.UserID, &entry.UserEmail, &action, &employeeID,
			&entry.EmployeeName, &loggedAt, &entry.Details); err != nil {
			log.Err(err).Str("func", "*activityLogRepository.List").Msg("error scanning activity log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		entry.Action = models.Action(action)
		if employeeID.Valid {
			id := employeeID.String
			entry.EmployeeID = &id
		}
		if entry.Timestamp, err = parseTime(loggedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entries, nil
}

func (r *activityLogRepository) Create(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	log := logger.FromContext(ctx)

	var employeeID sql.NullString
	if entry.EmployeeID != nil {
		employeeID = sql.NullString{String: *entry.EmployeeID, Valid: true}
	}

	query, args, err := r.db.builder().
		Insert(entry.TableName()).
		Columns(activityLogColumns...).
		Values(entry.ID, entry.UserID, entry.UserEmail, string(entry.Action), employeeID,
			entry.EmployeeName, formatTime(entry.Timestamp), entry.Details).
		ToSql()
	if err != nil {
		return models.ActivityLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*activityLogRepository.Create").Msg("error inserting activity log")
		if isUniqueViolation(err) {
			return models.ActivityLog{}, ErrAlreadyExists
		}
		return models.ActivityLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

func (r *activityLogRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, models.ActivityLog{}.TableName(), id)
}
