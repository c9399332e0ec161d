package reconcile

import (
	"time"

	"stock-check/core/register"
	"stock-check/core/state"
)

// Row is the per-state comparison between register and ledger.
type Row struct {
	// State is the canonical state being compared.
	State state.State `json:"state"`

	// Expected is the number of register rows in this state.
	Expected int `json:"expected"`

	// Scanned is the number of found ledger entries in this state.
	Scanned int `json:"scanned"`

	// Divergence is Expected minus Scanned. It may be negative.
	Divergence int `json:"divergence"`
}

// Report is the reconciliation output for one register and ledger pair.
type Report struct {
	// RegisterID identifies the register import the report was computed from.
	RegisterID string `json:"register_id"`

	// SessionID identifies the ledger the report was computed from.
	SessionID string `json:"session_id"`

	// Missing lists stock rows never found by a scan.
	Missing []register.Record `json:"missing"`

	// Rows holds the per-state comparison, sold excluded.
	Rows []Row `json:"rows"`

	// Stock summarizes the stock state specifically.
	Stock StockMetrics `json:"stock"`

	// Progress summarizes scanning progress against the register size.
	Progress Progress `json:"progress"`

	// GeneratedAt is when the report was computed.
	GeneratedAt time.Time `json:"generated_at"`
}

// StockMetrics summarizes the stock state.
type StockMetrics struct {
	// TotalExpected counts register rows in stock.
	TotalExpected int `json:"total_expected"`

	// ScannedStock counts found scans whose state is stock.
	ScannedStock int `json:"scanned_stock"`

	// ScannedOthers counts found scans in any other state.
	ScannedOthers int `json:"scanned_others"`

	// TotalMissing is TotalExpected minus ScannedStock, floored at zero.
	TotalMissing int `json:"total_missing"`
}

// Progress summarizes how far the session has come.
type Progress struct {
	// Scanned counts every ledger entry, found or not.
	Scanned int `json:"scanned"`

	// Pending is the register size minus Scanned. It may be negative when
	// many unknown items were scanned.
	Pending int `json:"pending"`

	// Ratio is Scanned over the register size, 0 for an empty register.
	Ratio float64 `json:"ratio"`

	// NotFound counts ledger entries that matched no register row.
	NotFound int `json:"not_found"`

	// Adjustments counts ledger entries that require adjustment.
	Adjustments int `json:"adjustments"`
}
