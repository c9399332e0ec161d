package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"stock-check/core/ledger"
	"stock-check/core/reconcile"
	"stock-check/core/register"
	"stock-check/core/spreadsheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileRegisterPath string
	reconcileSessionID    string
	reconcileExportPath   string
)

// reconcileCmd rebuilds the report of a stored session.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a stored session against a register file",
	Long: `Loads a register file and a stored session and reports missing stock items,
per-state divergences and items needing adjustment.

Examples:
  # Report to the log
  reconcile --register lansweeper.xlsx --session 20260108_203000

  # Also write the report workbook
  reconcile --register lansweeper.xlsx --session 20260108_203000 --export report.xlsx`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileRegisterPath, "register", "", "Register file (.xlsx or .csv)")
	reconcileCmd.Flags().StringVar(&reconcileSessionID, "session", "", "Stored session id")
	reconcileCmd.Flags().StringVar(&reconcileExportPath, "export", "", "Write the report to this .xlsx file")
	_ = reconcileCmd.MarkFlagRequired("register")
	_ = reconcileCmd.MarkFlagRequired("session")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	table, err := readTable(reconcileRegisterPath)
	if err != nil {
		return err
	}
	idx, err := register.Build(filepath.Base(reconcileRegisterPath), table)
	if err != nil {
		return err
	}
	for _, col := range idx.Collisions() {
		l.Warn("Duplicate serial in register, first row wins",
			zap.String("serial", col.Serial),
			zap.Int("kept_row", col.KeptRow),
			zap.Int("shadow_row", col.ShadowRow),
		)
	}

	store, err := openStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	rec, err := store.Get(ctx, reconcileSessionID)
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", reconcileSessionID, err)
	}
	if rec.LansweeperFile != "" && rec.LansweeperFile != idx.Filename() {
		l.Warn("Session was recorded against a different register",
			zap.String("session_register", rec.LansweeperFile),
			zap.String("register", idx.Filename()),
		)
	}

	led := ledger.New(ledger.Meta{}, nil)
	led.Restore(rec)
	report := reconcile.Reconcile(idx, led)

	printReconcileReport(l, report)

	if reconcileExportPath == "" {
		return nil
	}
	f, err := os.Create(reconcileExportPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", reconcileExportPath, err)
	}
	defer f.Close()
	if err := spreadsheet.WriteReconciliation(f, report, reconcile.AdjustmentItems(led.Items())); err != nil {
		return err
	}
	l.Info("Report written", zap.String("file", reconcileExportPath))
	return nil
}

// printReconcileReport logs the report summary and a sample of missing items.
func printReconcileReport(l *zap.Logger, r *reconcile.Report) {
	l.Info("Reconciliation report",
		zap.String("session_id", r.SessionID),
		zap.Int("expected_stock", r.Stock.TotalExpected),
		zap.Int("scanned_stock", r.Stock.ScannedStock),
		zap.Int("scanned_others", r.Stock.ScannedOthers),
		zap.Int("missing", r.Stock.TotalMissing),
		zap.Int("not_found", r.Progress.NotFound),
		zap.Int("adjustments", r.Progress.Adjustments),
	)

	for _, row := range r.Rows {
		l.Info("State",
			zap.String("state", string(row.State)),
			zap.Int("expected", row.Expected),
			zap.Int("scanned", row.Scanned),
			zap.Int("divergence", row.Divergence),
		)
	}

	maxShow := min(5, len(r.Missing))
	for _, m := range r.Missing[:maxShow] {
		l.Info("Missing item",
			zap.String("serial", m.Serial),
			zap.String("name", m.Hostname),
			zap.String("model", m.Model),
		)
	}
	if len(r.Missing) > maxShow {
		l.Info("Additional missing items not shown", zap.Int("count", len(r.Missing)-maxShow))
	}
}
