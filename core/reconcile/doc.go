// Package reconcile compares the asset register against the session ledger.
//
// The register says what should be on the shelf; the ledger says what the
// operator actually scanned. Reconcile produces:
//
//   - Missing: register rows in the stock state whose serial was never found
//     by a scan, in register order.
//   - Rows: one row per canonical state present in either source, with the
//     expected count, the scanned count and their difference. Sold equipment is
//     excluded. Rows are sorted by expected count, largest first.
//
// Divergence is expected minus scanned and is never clamped: a negative value
// means more items were scanned in that state than the register expects.
//
// # Metrics
//
// Alongside the report the package derives the progress and stock summaries
// shown to the operator (StockMetrics, Progress, AdjustmentItems,
// StateDistribution).
//
// # Cache
//
// Cache memoizes reports per (register import, ledger revision). A new
// register import or any ledger mutation changes the key, so a report is never
// computed from a mix of old and new data.
//
// # Usage Example
//
//	report := reconcile.Reconcile(idx, led)
//	for _, row := range report.Rows {
//	    fmt.Println(row.State, row.Expected, row.Scanned, row.Divergence)
//	}
package reconcile
