package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

// TestStorages_SQLiteRoundTrip runs the repositories against a real migrated
// SQLite file, covering the driver-specific unique violation mapping.
func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.ServerDB{
		DSN:    filepath.Join(t.TempDir(), "registry.db"),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(ctx))

	u := sampleUser()
	_, err = s.UserRepository.Create(ctx, u)
	require.NoError(t, err)

	dup := u
	dup.ID = "u2"
	_, err = s.UserRepository.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyExists, "email is unique")

	found, err := s.UserRepository.List(ctx, UserFilter{Email: u.Email})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, u, found[0])

	e := sampleEmployee()
	_, err = s.EmployeeRepository.Create(ctx, e)
	require.NoError(t, err)
	_, err = s.EmployeeRepository.Create(ctx, e)
	assert.ErrorIs(t, err, ErrAlreadyExists, "id is the primary key")

	empID := e.ID
	_, err = s.ActivityLogRepository.Create(ctx, models.ActivityLog{
		ID: "log1", UserID: u.ID, UserEmail: u.Email, Action: models.ActionCreate,
		EmployeeID: &empID, EmployeeName: e.Name, Timestamp: testTime, Details: "Employee created",
	})
	require.NoError(t, err)

	logs, err := s.ActivityLogRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "e1", *logs[0].EmployeeID)

	require.NoError(t, s.EmployeeRepository.Delete(ctx, e.ID))
	_, err = s.EmployeeRepository.Get(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewConnectDB_UnsupportedDriver(t *testing.T) {
	_, err := NewConnectDB(context.Background(), config.ServerDB{DSN: "x", Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestDB_Builder_Placeholders(t *testing.T) {
	pg := &DB{driver: config.DriverPostgres}
	q, _, err := pg.builder().Select("id").From("users").Where("email = ?", "a").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "$1")

	lite := &DB{driver: config.DriverSQLite}
	q, _, err = lite.builder().Select("id").From("users").Where("email = ?", "a").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "?")
}

func TestParseTime(t *testing.T) {
	got, err := parseTime(formatTime(testTime))
	require.NoError(t, err)
	assert.Equal(t, testTime, got)

	zero, err := parseTime("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = parseTime("not a time")
	assert.Error(t, err)
}
