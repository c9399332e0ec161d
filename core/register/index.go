package register

import (
	"strings"
	"time"

	"stock-check/core/state"
	"stock-check/core/utils"

	"github.com/google/uuid"
)

// Index is an immutable, pre-indexed asset register.
type Index struct {
	id         string
	filename   string
	importedAt time.Time

	records     []Record
	bySerial    map[string]int
	byAssetTag  map[string]int
	stateCounts map[state.State]int
	hasAssetTag bool
	collisions  []Collision
}

// Build validates a table and indexes its rows. No index is returned unless
// the whole table is acceptable.
func Build(filename string, table Table) (*Index, error) {
	columns, err := resolveColumns(table.Header)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, ErrEmptyRegister
	}

	_, hasAssetTag := columns[ColumnAssetTag]

	idx := &Index{
		id:          uuid.NewString(),
		filename:    filename,
		importedAt:  time.Now(),
		records:     make([]Record, 0, len(table.Rows)),
		bySerial:    make(map[string]int, len(table.Rows)),
		byAssetTag:  make(map[string]int),
		stateCounts: make(map[state.State]int),
		hasAssetTag: hasAssetTag,
	}

	for i, row := range table.Rows {
		rec := Record{
			Serial:   strings.TrimSpace(cell(row, columns, ColumnSerial)),
			RawState: strings.TrimSpace(cell(row, columns, ColumnState)),
			State:    state.FromValue(rawCell(row, columns, ColumnState)),
			Hostname: cell(row, columns, ColumnName),
			LastUser: cell(row, columns, ColumnLastUser),
			Model:    cell(row, columns, ColumnModel),
			Row:      i,
		}
		if hasAssetTag {
			rec.AssetTag = utils.NumericKey(rawCell(row, columns, ColumnAssetTag))
		}
		idx.add(rec)
	}

	if len(idx.bySerial) == 0 {
		return nil, ErrEmptyRegister
	}

	return idx, nil
}

func (idx *Index) add(rec Record) {
	pos := len(idx.records)
	idx.records = append(idx.records, rec)
	idx.stateCounts[rec.State]++

	// rows without a serial count towards their state but cannot be looked up
	if rec.Serial == "" {
		return
	}

	key := serialKey(rec.Serial)
	if kept, exists := idx.bySerial[key]; exists {
		idx.collisions = append(idx.collisions, Collision{
			Serial:    rec.Serial,
			KeptRow:   idx.records[kept].Row,
			ShadowRow: rec.Row,
		})
	} else {
		idx.bySerial[key] = pos
	}

	if rec.AssetTag != "" {
		if _, exists := idx.byAssetTag[rec.AssetTag]; !exists {
			idx.byAssetTag[rec.AssetTag] = pos
		}
	}
}

// ID uniquely identifies this import. A re-import of the same file yields a new ID.
func (idx *Index) ID() string { return idx.id }

// Filename is the name of the imported file, informational only.
func (idx *Index) Filename() string { return idx.filename }

// ImportedAt is when the index was built.
func (idx *Index) ImportedAt() time.Time { return idx.importedAt }

// Len returns the number of indexed rows.
func (idx *Index) Len() int { return len(idx.records) }

// HasAssetTags reports whether the register carried an asset tag column.
func (idx *Index) HasAssetTags() bool { return idx.hasAssetTag }

// Records returns the rows in original register order.
func (idx *Index) Records() []Record {
	out := make([]Record, len(idx.records))
	copy(out, idx.records)
	return out
}

// Collisions returns the duplicate serials shadowed by an earlier row.
func (idx *Index) Collisions() []Collision {
	out := make([]Collision, len(idx.collisions))
	copy(out, idx.collisions)
	return out
}

// FindBySerial looks a serial up case-insensitively. The first row wins when
// the register holds duplicates.
func (idx *Index) FindBySerial(key string) (Record, bool) {
	pos, ok := idx.bySerial[serialKey(key)]
	if !ok {
		return Record{}, false
	}
	return idx.records[pos], true
}

// FindByAssetTag looks an asset tag up. Numeric queries are compared in their
// integer form so "9856" matches a register cell holding 9856.0.
func (idx *Index) FindByAssetTag(key string) (Record, bool) {
	if !idx.hasAssetTag {
		return Record{}, false
	}
	k := utils.NumericKey(key)
	if k == "" {
		return Record{}, false
	}
	pos, ok := idx.byAssetTag[k]
	if !ok {
		return Record{}, false
	}
	return idx.records[pos], true
}

// CountByState returns the number of register rows in the given state.
func (idx *Index) CountByState(s state.State) int {
	return idx.stateCounts[s]
}

// StateCounts returns a copy of the per-state row counts.
func (idx *Index) StateCounts() map[state.State]int {
	out := make(map[state.State]int, len(idx.stateCounts))
	for s, n := range idx.stateCounts {
		out[s] = n
	}
	return out
}

// AdjustmentList returns the register rows whose state requires adjustment.
func (idx *Index) AdjustmentList() []Record {
	var out []Record
	for _, rec := range idx.records {
		if rec.State.RequiresAdjustment() {
			out = append(out, rec)
		}
	}
	return out
}

func serialKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// resolveColumns maps canonical column names to the header spelling used by
// the table, failing when a required column is absent.
func resolveColumns(header []string) (map[string]string, error) {
	present := make(map[string]string, len(header))
	for _, h := range header {
		present[strings.ToLower(strings.TrimSpace(h))] = h
	}

	columns := make(map[string]string)
	var missing []string
	for _, col := range RequiredColumns {
		actual, ok := present[strings.ToLower(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		columns[col] = actual
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	for _, col := range OptionalColumns {
		if actual, ok := present[strings.ToLower(col)]; ok {
			columns[col] = actual
		}
	}
	return columns, nil
}

func rawCell(row Row, columns map[string]string, col string) any {
	actual, ok := columns[col]
	if !ok {
		return nil
	}
	return row[actual]
}

func cell(row Row, columns map[string]string, col string) string {
	return utils.ToString(rawCell(row, columns, col))
}
