package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newMockDB(t *testing.T, driverName string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, driver: driverName, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, config.DriverPostgres)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testTime = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func userRow(u models.User) []driver.Value {
	return []driver.Value{u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.Photo, formatTime(u.CreatedAt), formatTime(u.UpdatedAt)}
}

func sampleUser() models.User {
	return models.User{
		ID: "u1", Email: "a@x.io", Name: "Ann", Role: models.RoleAdmin,
		PasswordHash: "$2a$10$hash", CreatedAt: testTime, UpdatedAt: testTime,
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestUserRepository_Create_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	u := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(userRow(u)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, u, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), sampleUser())
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserRepository_Create_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), sampleUser())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"))
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestUserRepository_List_ByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	u := sampleUser()

	rows := sqlmock.NewRows(userColumns).AddRow(userRow(u)...)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("a@x.io").
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), UserFilter{Email: "a@x.io"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u, users[0])
}

func TestUserRepository_List_NoFilterReturnsEmptySlice(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.List(context.Background(), UserFilter{})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_List_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), UserFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUserRepository_List_BadTimestamp(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	row := userRow(sampleUser())
	row[6] = "yesterday"

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(userColumns).AddRow(row...))

	_, err := repo.List(context.Background(), UserFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestUserRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Patch ─────────────────────────────────────────────────────────────────────

func TestUserRepository_Patch_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	name := "Anna"
	patched := sampleUser()
	patched.Name = name

	mock.ExpectExec(`UPDATE users SET name = \$1 WHERE id = \$2`).
		WithArgs("Anna", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userRow(patched)...))

	got, err := repo.Patch(context.Background(), "u1", models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Patch_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	name := "Anna"

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Patch(context.Background(), "missing", models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Patch_EmptyPatchReadsOnly(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userRow(sampleUser())...))

	got, err := repo.Patch(context.Background(), "u1", models.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Patch_DuplicateEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	email := "taken@x.io"

	mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Patch(context.Background(), "u1", models.UserPatch{Email: &email})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
