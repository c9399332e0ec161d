package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"stock-check/core/ledger"
	"stock-check/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, rec *ledger.Record) io.ReadCloser {
	t.Helper()
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	return io.NopCloser(strings.NewReader(string(data)))
}

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestObjectStore_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	client := new(mocks.Client)
	client.On("BucketExists", ctx, "stock").Return(false, nil)
	client.On("MakeBucket", ctx, "stock", mock.Anything).Return(nil)
	require.NoError(t, NewObjectStore(client, "stock", "sessions/").EnsureBucket(ctx))
	client.AssertCalled(t, "MakeBucket", ctx, "stock", mock.Anything)

	failing := new(mocks.Client)
	failing.On("BucketExists", ctx, "stock").Return(false, errors.New("connection refused"))
	err := NewObjectStore(failing, "stock", "sessions/").EnsureBucket(ctx)
	assert.ErrorContains(t, err, "failed to check bucket existence")
}

func TestObjectStore_Put(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "stock", "sessions/")

	var uploaded ledger.Record
	client.On("PutObject", ctx, "stock", "sessions/20260108_203000.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			_ = json.Unmarshal(data, &uploaded)
		}).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, store.Put(ctx, "20260108_203000", record("20260108_203000", "AAA111")))
	assert.Equal(t, "export.xlsx", uploaded.LansweeperFile)
	assert.Len(t, uploaded.Items, 1)

	client.On("PutObject", ctx, "stock", "sessions/20260109_000000.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota exceeded"))
	err := store.Put(ctx, "20260109_000000", record("20260109_000000"))
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestObjectStore_Get(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "stock", "sessions/")

	client.On("GetObject", ctx, "stock", "sessions/20260108_203000.json", mock.Anything).
		Return(jsonBody(t, record("20260108_203000", "AAA111", "BBB222")), nil)
	client.On("GetObject", ctx, "stock", "sessions/20260101_000000.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	rec, err := store.Get(ctx, "20260108_203000")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.TotalScanned)

	_, err = store.Get(ctx, "20260101_000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "../x")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestObjectStore_List(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "stock", "sessions/")

	client.On("ListObjects", ctx, "stock", mock.Anything).
		Return(listing("sessions/20260108_203000.json", "sessions/readme.txt", "sessions/20260109_090000.json"))
	client.On("GetObject", mock.Anything, "stock", "sessions/20260108_203000.json", mock.Anything).
		Return(jsonBody(t, record("20260108_203000", "AAA111")), nil)
	client.On("GetObject", mock.Anything, "stock", "sessions/20260109_090000.json", mock.Anything).
		Return(jsonBody(t, record("20260109_090000", "BBB222", "CCC333")), nil)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "20260109_090000", list[0].SessionID)
	assert.Equal(t, 2, list[0].TotalScanned)
	assert.Equal(t, "20260108_203000", list[1].SessionID)
}

func TestObjectStore_Delete(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	store := NewObjectStore(client, "stock", "sessions/")

	client.On("ListObjects", ctx, "stock", minio.ListObjectsOptions{Prefix: "sessions/20260108_203000.json", MaxKeys: 1}).
		Return(listing("sessions/20260108_203000.json"))
	client.On("ListObjects", ctx, "stock", minio.ListObjectsOptions{Prefix: "sessions/20260101_000000.json", MaxKeys: 1}).
		Return(listing())
	client.On("RemoveObject", ctx, "stock", "sessions/20260108_203000.json", mock.Anything).Return(nil)

	require.NoError(t, store.Delete(ctx, "20260108_203000"))
	assert.ErrorIs(t, store.Delete(ctx, "20260101_000000"), ErrNotFound)
	client.AssertNumberOfCalls(t, "RemoveObject", 1)
}
