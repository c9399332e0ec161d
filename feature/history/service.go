package history

import (
	"context"
	"io"

	"stock-check/core/ledger"
	"stock-check/core/scan"
	"stock-check/core/sessionstore"
	"stock-check/core/spreadsheet"

	"go.uber.org/zap"
)

// Service reads and removes persisted sessions.
type Service struct {
	store  sessionstore.Store
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(store sessionstore.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Totals counts a stored session's items by result.
type Totals struct {
	Total        int `json:"total"`
	OK           int `json:"ok"`
	Adjustments  int `json:"adjustments"`
	UnknownState int `json:"unknown_state"`
	NotFound     int `json:"not_found"`
}

func totals(items []scan.Outcome) Totals {
	t := Totals{Total: len(items)}
	for _, it := range items {
		switch {
		case !it.Found:
			t.NotFound++
		case it.RequiresAdjustment:
			t.Adjustments++
		case it.State.IsOK():
			t.OK++
		default:
			t.UnknownState++
		}
	}
	return t
}

// Detail is a stored session with its totals.
type Detail struct {
	*ledger.Record
	Totals Totals `json:"totals"`
}

func (s *Service) List(ctx context.Context) ([]ledger.Summary, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Record: rec,
		Totals: totals(rec.Items),
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Export writes a stored session's scans as a workbook.
func (s *Service) Export(ctx context.Context, w io.Writer, id string) (string, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := spreadsheet.WriteHistory(w, rec.Items); err != nil {
		return "", err
	}
	return spreadsheet.Filename("session", rec.SessionID, rec.StartedAt), nil
}
