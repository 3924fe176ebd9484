package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newMockDB returns a DB over sqlmock that classifies errors like PostgreSQL.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

// newTestStorages returns repositories over a migrated in-memory SQLite database.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	log := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	storages, err := NewStoragesFromDB(db, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func createTestUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Email:    email,
		Name:     "Test User",
		Password: "hash",
		IsActive: true,
	})
	require.NoError(t, err)

	return user
}

func ptr[T any](v T) *T { return &v }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func labelNames(labels []models.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.Name)
	}
	return names
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}
