package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"stock-check/core/ledger"
	"stock-check/core/reconcile"
	"stock-check/core/register"
	"stock-check/core/scan"
	"stock-check/core/session"
	"stock-check/core/spreadsheet"

	"go.uber.org/zap"
)

// Service drives the operator session behind the HTTP handlers.
type Service struct {
	session *session.Context
	logger  *zap.Logger
}

// NewService creates a new inventory service.
func NewService(sess *session.Context, logger *zap.Logger) *Service {
	return &Service{session: sess, logger: logger}
}

// ImportRegister parses an uploaded register file and loads it.
func (s *Service) ImportRegister(ctx context.Context, filename string, r io.Reader, confirm bool) (*session.ImportSummary, error) {
	table, err := spreadsheet.ReadTable(r, filename)
	if err != nil {
		return nil, err
	}
	return s.session.ImportRegister(ctx, filename, table, confirm)
}

func (s *Service) Scan(ctx context.Context, raw string) (*session.Result, error) {
	return s.session.Scan(ctx, raw)
}

func (s *Service) Keep() (*scan.Outcome, error) {
	return s.session.Keep()
}

func (s *Service) Discard(ctx context.Context) (*scan.Outcome, error) {
	return s.session.Discard(ctx)
}

func (s *Service) Reset() ledger.Meta {
	return s.session.Reset()
}

func (s *Service) Status() session.Status {
	return s.session.Status()
}

// Reconciliation returns the report for the current register and session.
func (s *Service) Reconciliation() (*reconcile.Report, error) {
	return s.session.Report()
}

// Missing lists the stock items of the register that were not scanned.
func (s *Service) Missing() ([]register.Record, error) {
	rep, err := s.session.Report()
	if err != nil {
		return nil, err
	}
	return rep.Missing, nil
}

// Adjustments pairs the scanned items needing adjustment with every active
// row of the register.
type Adjustments struct {
	Scanned  []scan.Outcome    `json:"scanned"`
	Register []register.Record `json:"register"`
}

func (s *Service) Adjustments() (*Adjustments, error) {
	idx := s.session.Register()
	if idx == nil {
		return nil, session.ErrNoRegister
	}
	return &Adjustments{
		Scanned:  reconcile.AdjustmentItems(s.session.Items()),
		Register: idx.AdjustmentList(),
	}, nil
}

// History returns the scans of the current session, newest first.
func (s *Service) History() []scan.Outcome {
	return s.session.Items()
}

// Export writes one report as a workbook and returns its download name.
func (s *Service) Export(w io.Writer, kind string) (string, error) {
	st := s.session.Status()

	var err error
	switch kind {
	case "reconciliation":
		var rep *reconcile.Report
		if rep, err = s.session.Report(); err == nil {
			err = spreadsheet.WriteReconciliation(w, rep, reconcile.AdjustmentItems(s.session.Items()))
		}
	case "missing":
		var missing []register.Record
		if missing, err = s.Missing(); err == nil {
			err = spreadsheet.WriteMissing(w, missing)
		}
	case "adjustments":
		var adj *Adjustments
		if adj, err = s.Adjustments(); err == nil {
			err = spreadsheet.WriteAdjustments(w, adj.Scanned)
		}
	case "history":
		err = spreadsheet.WriteHistory(w, s.session.Items())
	default:
		return "", fmt.Errorf("unknown report %q", kind)
	}
	if err != nil {
		return "", err
	}
	return spreadsheet.Filename(kind, st.SessionID, time.Now()), nil
}
