package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"stock-check/core/ledger"
	"stock-check/core/scan"
	"stock-check/core/sessionstore"
	"stock-check/core/spreadsheet"
	"stock-check/core/state"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, id string, rec *ledger.Record) error {
	return m.Called(ctx, id, rec).Error(0)
}

func (m *mockStore) Get(ctx context.Context, id string) (*ledger.Record, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*ledger.Record)
	return rec, args.Error(1)
}

func (m *mockStore) List(ctx context.Context) ([]ledger.Summary, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]ledger.Summary)
	return list, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func seeded(t *testing.T) *sessionstore.MemoryStore {
	t.Helper()
	at := time.Date(2026, 1, 8, 20, 30, 0, 0, time.UTC)
	store := sessionstore.NewMemoryStore()
	rec := &ledger.Record{
		SessionID:      "20260108_203000",
		StartedAt:      at,
		EndedAt:        at.Add(time.Hour),
		LansweeperFile: "export.xlsx",
		TotalScanned:   4,
		Items: []scan.Outcome{
			{MatchedSerial: "DSP00001", Found: true, State: state.Unknown, Timestamp: at},
			{MatchedSerial: "NOPE0001", Found: false, State: state.Unknown, Timestamp: at},
			{MatchedSerial: "XYZ98765", Found: true, State: state.Active, RequiresAdjustment: true, Timestamp: at},
			{MatchedSerial: "ABC12345", Found: true, State: state.Stock, Timestamp: at},
		},
	}
	require.NoError(t, store.Put(context.Background(), rec.SessionID, rec))
	return store
}

func setupTestApp(store sessionstore.Store) *fiber.App {
	app := fiber.New()
	_ = NewFeature(store, zap.NewNop()).Load(app)
	return app
}

func TestLoader(t *testing.T) {
	assert.True(t, NewFeature(sessionstore.NewMemoryStore(), zap.NewNop()).IsEnabled())
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())
	assert.Equal(t, "history", NewFeature(nil, zap.NewNop()).Name())
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(seeded(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []ledger.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "export.xlsx", list[0].LansweeperFile)
}

func TestHandleList_StoreFailure(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return(nil, errors.New("bucket unavailable"))
	app := setupTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleGet(t *testing.T) {
	app := setupTestApp(seeded(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/history/20260108_203000", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail struct {
		SessionID string `json:"session_id"`
		Totals    Totals `json:"totals"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, "20260108_203000", detail.SessionID)
	assert.Equal(t, Totals{Total: 4, OK: 1, Adjustments: 1, UnknownState: 1, NotFound: 1}, detail.Totals)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/20990101_000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGet_XLSX(t *testing.T) {
	app := setupTestApp(seeded(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/history/20260108_203000?format=xlsx", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, spreadsheet.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "session_20260108_203000.xlsx")
}

func TestHandleDelete(t *testing.T) {
	store := seeded(t)
	app := setupTestApp(store)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/history/20260108_203000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/history/20260108_203000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleDelete_InvalidID(t *testing.T) {
	store := new(mockStore)
	store.On("Delete", mock.Anything, "bad..id").Return(sessionstore.ErrInvalidID)
	app := setupTestApp(store)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/history/bad..id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
