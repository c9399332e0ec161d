package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"stock-check/core/register"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither xlsx nor csv.
var ErrUnsupportedFormat = errors.New("unsupported register format: expected .xlsx or .csv")

// ErrUnreadable wraps parse failures of a file in a supported format.
var ErrUnreadable = errors.New("register file could not be read")

// ReadTable parses a register file, choosing the format from the file name.
func ReadTable(r io.Reader, filename string) (register.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return register.Table{}, fmt.Errorf("%w (got %q)", ErrUnsupportedFormat, filename)
	}
}

// ReadXLSX reads the first worksheet of a workbook.
func ReadXLSX(r io.Reader) (register.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return register.Table{}, fmt.Errorf("%w: failed to open workbook: %w", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return register.Table{}, register.ErrEmptyRegister
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return register.Table{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return toTable(rows), nil
}

// ReadCSV reads a comma or semicolon separated file. The separator is
// taken from the header line.
func ReadCSV(r io.Reader) (register.Table, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return register.Table{}, fmt.Errorf("failed to read csv: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = detectSeparator(head)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return register.Table{}, fmt.Errorf("%w: failed to parse csv: %w", ErrUnreadable, err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return toTable(records), nil
}

func detectSeparator(head []byte) rune {
	line := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		line = head[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

// toTable treats the first non-empty row as the header. Blank cells become
// nil and blank rows are dropped.
func toTable(rows [][]string) register.Table {
	var table register.Table
	for _, cells := range rows {
		if blank(cells) {
			continue
		}
		if table.Header == nil {
			for _, c := range cells {
				table.Header = append(table.Header, strings.TrimSpace(c))
			}
			continue
		}

		row := make(register.Row, len(table.Header))
		for i, name := range table.Header {
			if name == "" {
				continue
			}
			var v any
			if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
				v = cells[i]
			}
			row[name] = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
