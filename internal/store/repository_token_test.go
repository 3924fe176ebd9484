package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyA = "0123456789abcdef0123456789abcdef01234567"
	testKeyB = "fedcba9876543210fedcba9876543210fedcba98"
)

func TestTokenRepository_SQLite(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	user := createTestUser(t, s, "token@example.com")

	first, err := s.TokenRepository.GetOrCreateToken(ctx, user.UserID, testKeyA)
	require.NoError(t, err)
	assert.Equal(t, testKeyA, first.Key)
	assert.Equal(t, user.UserID, first.UserID)

	// a second issuance keeps the stored key
	second, err := s.TokenRepository.GetOrCreateToken(ctx, user.UserID, testKeyB)
	require.NoError(t, err)
	assert.Equal(t, testKeyA, second.Key)
	assert.Equal(t, 1, countRows(t, s.db.DB, `SELECT COUNT(*) FROM auth_tokens WHERE user_id = ?`, user.UserID))

	owner, err := s.TokenRepository.GetUserByToken(ctx, testKeyA)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, owner.UserID)
	assert.Equal(t, "token@example.com", owner.Email)

	_, err = s.TokenRepository.GetUserByToken(ctx, testKeyB)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenRepository_UnknownUser(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.TokenRepository.GetOrCreateToken(context.Background(), 4242, testKeyA)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenRepository_CascadeOnUserDelete(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	user := createTestUser(t, s, "gone@example.com")

	_, err := s.TokenRepository.GetOrCreateToken(ctx, user.UserID, testKeyA)
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, user.UserID)
	require.NoError(t, err)

	_, err = s.TokenRepository.GetUserByToken(ctx, testKeyA)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrCreateToken_InsertError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &tokenRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("INSERT INTO auth_tokens (.+) ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs(testKeyA, int64(1)).
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.GetOrCreateToken(context.Background(), 1, testKeyA)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateToken_ReadsBackExistingKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &tokenRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("INSERT INTO auth_tokens").
		WithArgs(testKeyB, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT token_key, user_id, created_at FROM auth_tokens WHERE user_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"token_key", "user_id", "created_at"}).
			AddRow(testKeyA, 1, testTime))

	token, err := repo.GetOrCreateToken(context.Background(), 1, testKeyB)
	require.NoError(t, err)
	assert.Equal(t, testKeyA, token.Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}
