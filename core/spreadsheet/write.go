package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"stock-check/core/reconcile"
	"stock-check/core/register"
	"stock-check/core/scan"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the workbooks written by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const timeLayout = "2006-01-02 15:04:05"

// Sanitize neutralizes text that a spreadsheet would evaluate as a formula.
func Sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}

type sheet struct {
	name   string
	header []string
	rows   [][]any
}

func write(w io.Writer, sheets ...sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sh.name, err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sh.name, err)
		}

		header := make([]any, len(sh.header))
		for j, h := range sh.header {
			header[j] = h
		}
		if err := f.SetSheetRow(sh.name, "A1", &header); err != nil {
			return err
		}
		if err := f.SetRowStyle(sh.name, 1, 1, bold); err != nil {
			return err
		}

		for r, row := range sh.rows {
			cells := make([]any, len(row))
			for j, v := range row {
				cells[j] = Sanitize(v)
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sh.name, cell, &cells); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r+2, sh.name, err)
			}
		}

		if len(sh.header) > 0 {
			last, _ := excelize.ColumnNumberToName(len(sh.header))
			_ = f.SetColWidth(sh.name, "A", last, 20)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func missingSheet(records []register.Record) sheet {
	sh := sheet{name: "Missing", header: []string{"Serialnumber", "State", "Model", "Name", "lastuser"}}
	for _, r := range records {
		sh.rows = append(sh.rows, []any{r.Serial, r.RawState, r.Model, r.Hostname, r.LastUser})
	}
	return sh
}

func adjustmentSheet(items []scan.Outcome) sheet {
	sh := sheet{name: "Adjustments", header: []string{"Serialnumber", "State", "Name", "lastuser", "Asset Tag", "Verified At"}}
	for _, it := range items {
		var host, user string
		if it.Identity != nil {
			host, user = it.Identity.Hostname, it.Identity.LastUser
		}
		sh.rows = append(sh.rows, []any{it.MatchedSerial, string(it.State), host, user, it.AssetTag, it.Timestamp.Format(timeLayout)})
	}
	return sh
}

func historySheet(items []scan.Outcome) sheet {
	sh := sheet{name: "History", header: []string{"Timestamp", "Serial", "Input", "Asset Tag", "Found", "State", "Requires Adjustment", "Message"}}
	for _, it := range items {
		sh.rows = append(sh.rows, []any{
			it.Timestamp.Format(timeLayout),
			it.MatchedSerial,
			it.RawInput,
			it.AssetTag,
			yesNo(it.Found),
			string(it.State),
			yesNo(it.RequiresAdjustment),
			it.Message(),
		})
	}
	return sh
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteMissing writes the register rows in stock that were not scanned.
func WriteMissing(w io.Writer, records []register.Record) error {
	return write(w, missingSheet(records))
}

// WriteAdjustments writes the scanned items that need correction in the
// asset system.
func WriteAdjustments(w io.Writer, items []scan.Outcome) error {
	return write(w, adjustmentSheet(items))
}

// WriteHistory writes every scan of a session, newest first.
func WriteHistory(w io.Writer, items []scan.Outcome) error {
	return write(w, historySheet(items))
}

// WriteReconciliation writes the full report: summary, per-state counts,
// missing items and adjustments.
func WriteReconciliation(w io.Writer, rep *reconcile.Report, adjustments []scan.Outcome) error {
	summary := sheet{
		name:   "Summary",
		header: []string{"Metric", "Value"},
		rows: [][]any{
			{"Session", rep.SessionID},
			{"Generated At", rep.GeneratedAt.Format(timeLayout)},
			{"Expected In Stock", rep.Stock.TotalExpected},
			{"Scanned In Stock", rep.Stock.ScannedStock},
			{"Scanned Other States", rep.Stock.ScannedOthers},
			{"Missing From Stock", rep.Stock.TotalMissing},
			{"Scanned", rep.Progress.Scanned},
			{"Pending", rep.Progress.Pending},
			{"Progress", fmt.Sprintf("%.1f%%", rep.Progress.Ratio*100)},
			{"Not Found", rep.Progress.NotFound},
			{"Requires Adjustment", rep.Progress.Adjustments},
		},
	}

	states := sheet{name: "States", header: []string{"State", "Expected", "Scanned", "Divergence"}}
	for _, row := range rep.Rows {
		states.rows = append(states.rows, []any{string(row.State), row.Expected, row.Scanned, row.Divergence})
	}

	return write(w, summary, states, missingSheet(rep.Missing), adjustmentSheet(adjustments))
}

// Filename builds a download name such as history_20260108_203000.xlsx.
func Filename(kind, sessionID string, at time.Time) string {
	if sessionID == "" {
		sessionID = at.Format("20060102_150405")
	}
	return fmt.Sprintf("%s_%s.xlsx", kind, sessionID)
}
