package sessionstore

import (
	"context"
	"errors"
	"testing"

	"stock-check/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestDBStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewDBStore(setupSQLite(t))
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "20260108_203000", record("20260108_203000", "AAA111")))
	require.NoError(t, store.Put(ctx, "20260109_090000", record("20260109_090000", "BBB222")))

	// saving again overwrites by session id
	require.NoError(t, store.Put(ctx, "20260108_203000", record("20260108_203000", "AAA111", "DDD444")))

	rec, err := store.Get(ctx, "20260108_203000")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.TotalScanned)
	assert.Equal(t, "DDD444", rec.Items[1].MatchedSerial)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "20260109_090000", list[0].SessionID)
	assert.Equal(t, 2, list[1].TotalScanned)

	require.NoError(t, store.Delete(ctx, "20260109_090000"))
	assert.ErrorIs(t, store.Delete(ctx, "20260109_090000"), ErrNotFound)

	_, err = store.Get(ctx, "20260109_090000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDBStore_QueryFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	store := &DBStore{db: db}
	mock.ExpectQuery("SELECT .* FROM `stock_sessions`").WillReturnError(errors.New("connection reset"))

	_, err = store.List(context.Background())
	assert.ErrorContains(t, err, "failed to list sessions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
