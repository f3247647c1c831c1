package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

func TestCodeStore_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewCodeStore(client)

	mock.ExpectHSet("verify:code-1", "email", "admin@example.com", "code", "123456").SetVal(2)
	mock.ExpectExpire("verify:code-1", 10*time.Minute).SetVal(true)

	err := store.Save(context.Background(), "code-1", "admin@example.com", "123456", 10*time.Minute)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCodeStore_Verify_Match(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewCodeStore(client)

	mock.ExpectHGetAll("verify:code-1").SetVal(map[string]string{
		"email": "admin@example.com",
		"code":  "123456",
	})
	mock.ExpectDel("verify:code-1").SetVal(1)

	email, err := store.Verify(context.Background(), "code-1", "123456")

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCodeStore_Verify_Mismatch(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewCodeStore(client)

	mock.ExpectHGetAll("verify:code-1").SetVal(map[string]string{
		"email": "admin@example.com",
		"code":  "123456",
	})

	_, err := store.Verify(context.Background(), "code-1", "654321")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)
}

func TestCodeStore_Verify_ExpiredOrMissing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewCodeStore(client)

	mock.ExpectHGetAll("verify:stale").SetVal(map[string]string{})

	_, err := store.Verify(context.Background(), "stale", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestCodeStore_Verify_NotReplayable(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewCodeStore(client)

	mock.ExpectHGetAll("verify:code-1").SetVal(map[string]string{
		"email": "admin@example.com",
		"code":  "123456",
	})
	mock.ExpectDel("verify:code-1").SetVal(1)
	mock.ExpectHGetAll("verify:code-1").SetVal(map[string]string{})

	_, err := store.Verify(context.Background(), "code-1", "123456")
	require.NoError(t, err)

	_, err = store.Verify(context.Background(), "code-1", "123456")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}
