package reconcile

import (
	"sort"
	"strings"
	"time"

	"stock-check/core/ledger"
	"stock-check/core/register"
	"stock-check/core/scan"
	"stock-check/core/state"
)

// Register is the read-only view of the asset register the engine needs.
type Register interface {
	ID() string
	Len() int
	Records() []register.Record
	StateCounts() map[state.State]int
}

// Ledger is the read-only view of the session ledger the engine needs.
type Ledger interface {
	Meta() ledger.Meta
	Items() []scan.Outcome
}

// excluded states never appear in the per-state rows.
var excluded = map[state.State]struct{}{
	state.Sold: {},
}

// Reconcile compares a register against a session ledger.
func Reconcile(reg Register, led Ledger) *Report {
	items := led.Items()

	report := &Report{
		RegisterID:  reg.ID(),
		SessionID:   led.Meta().SessionID,
		Missing:     Missing(reg.Records(), items),
		Rows:        Rows(reg.StateCounts(), items),
		Stock:       Stock(reg.StateCounts(), items),
		Progress:    CalculateProgress(reg.Len(), items),
		GeneratedAt: time.Now(),
	}
	return report
}

// Missing returns the stock records whose serial is absent from the found
// ledger entries, preserving register order.
func Missing(records []register.Record, items []scan.Outcome) []register.Record {
	scanned := foundSerials(items)

	missing := make([]register.Record, 0)
	for _, rec := range records {
		if rec.State != state.Stock {
			continue
		}
		if _, ok := scanned[serialKey(rec.Serial)]; ok {
			continue
		}
		missing = append(missing, rec)
	}
	return missing
}

// Rows builds the per-state comparison over the union of register and
// ledger states. Sold is excluded. Rows are sorted by expected count
// descending, then by state name.
func Rows(expected map[state.State]int, items []scan.Outcome) []Row {
	scanned := ScannedByState(items)

	union := make(map[state.State]struct{}, len(expected)+len(scanned))
	for s := range expected {
		union[s] = struct{}{}
	}
	for s := range scanned {
		union[s] = struct{}{}
	}

	rows := make([]Row, 0, len(union))
	for s := range union {
		if _, skip := excluded[s]; skip {
			continue
		}
		rows = append(rows, Row{
			State:      s,
			Expected:   expected[s],
			Scanned:    scanned[s],
			Divergence: expected[s] - scanned[s],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Expected != rows[j].Expected {
			return rows[i].Expected > rows[j].Expected
		}
		return rows[i].State < rows[j].State
	})
	return rows
}

// ScannedByState counts found ledger entries per state.
func ScannedByState(items []scan.Outcome) map[state.State]int {
	counts := make(map[state.State]int)
	for _, it := range items {
		if it.Found {
			counts[it.State]++
		}
	}
	return counts
}

// StateDistribution counts every ledger entry per state, not-found entries
// included under Unknown.
func StateDistribution(items []scan.Outcome) map[state.State]int {
	counts := make(map[state.State]int)
	for _, it := range items {
		counts[it.State]++
	}
	return counts
}

// Stock summarizes the stock state.
func Stock(expected map[state.State]int, items []scan.Outcome) StockMetrics {
	m := StockMetrics{TotalExpected: expected[state.Stock]}
	for _, it := range items {
		if !it.Found {
			continue
		}
		if it.State == state.Stock {
			m.ScannedStock++
		} else {
			m.ScannedOthers++
		}
	}
	m.TotalMissing = m.TotalExpected - m.ScannedStock
	if m.TotalMissing < 0 {
		m.TotalMissing = 0
	}
	return m
}

// CalculateProgress summarizes scanning progress against a register of
// registerSize rows.
func CalculateProgress(registerSize int, items []scan.Outcome) Progress {
	p := Progress{
		Scanned: len(items),
		Pending: registerSize - len(items),
	}
	if registerSize > 0 {
		p.Ratio = float64(len(items)) / float64(registerSize)
	}
	for _, it := range items {
		if !it.Found {
			p.NotFound++
		}
		if it.RequiresAdjustment {
			p.Adjustments++
		}
	}
	return p
}

// AdjustmentItems returns the ledger entries that require adjustment, in
// ledger order.
func AdjustmentItems(items []scan.Outcome) []scan.Outcome {
	out := make([]scan.Outcome, 0)
	for _, it := range items {
		if it.RequiresAdjustment {
			out = append(out, it)
		}
	}
	return out
}

func foundSerials(items []scan.Outcome) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.Found {
			set[serialKey(it.MatchedSerial)] = struct{}{}
		}
	}
	return set
}

func serialKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
