package register

import (
	"errors"
	"fmt"
	"strings"

	"stock-check/core/state"
)

// Column names as exported by the asset management system.
const (
	ColumnSerial   = "Serialnumber"
	ColumnState    = "State"
	ColumnName     = "Name"
	ColumnLastUser = "lastuser"
	ColumnAssetTag = "Ativo"
	ColumnModel    = "Model"
)

// RequiredColumns must all be present for a register to be accepted.
var RequiredColumns = []string{ColumnSerial, ColumnState, ColumnName, ColumnLastUser}

// OptionalColumns are used when present.
var OptionalColumns = []string{ColumnAssetTag, ColumnModel}

// ErrEmptyRegister is returned when the table has no data rows.
var ErrEmptyRegister = errors.New("register has no rows")

// MissingColumnsError lists the required columns absent from an imported table.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("register is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Row is one data row keyed by header name. Values are loosely typed because
// they come from spreadsheets or JSON.
type Row map[string]any

// Table is the raw tabular register handed over by an importer.
type Table struct {
	Header []string
	Rows   []Row
}

// Record is one row of the register.
type Record struct {
	// Serial is the manufacturer serial number, the primary matching key.
	Serial string `json:"serialnumber"`
	// AssetTag is the internal asset tag ("Ativo"), empty when absent.
	AssetTag string `json:"asset_tag,omitempty"`
	// RawState is the lifecycle state exactly as found in the register.
	RawState string `json:"raw_state"`
	// State is RawState normalized at import time.
	State state.State `json:"state"`
	// Hostname is the "Name" column. Display only.
	Hostname string `json:"hostname"`
	// LastUser is the "lastuser" column. Display only.
	LastUser string `json:"last_user"`
	// Model is only used by external filtering.
	Model string `json:"model,omitempty"`
	// Row is the zero-based position of the row in the imported table.
	Row int `json:"row"`
}

// Collision records a duplicate serial that lost to an earlier row.
type Collision struct {
	Serial    string `json:"serial"`
	KeptRow   int    `json:"kept_row"`
	ShadowRow int    `json:"shadow_row"`
}
