package scan

import (
	"time"

	"stock-check/core/state"
)

// Identity carries the details an operator needs to correct an item in the
// system of record. It is only attached to outcomes requiring adjustment.
type Identity struct {
	Hostname string `json:"hostname"`
	LastUser string `json:"last_user"`
}

// Outcome is the classified result of one scan. Outcomes are never mutated
// after Classify returns them.
type Outcome struct {
	// RawInput is the value as scanned.
	RawInput string `json:"raw_input"`
	// MatchedSerial is the register serial when found, otherwise the
	// normalized input.
	MatchedSerial string `json:"matched_serial"`
	// Found reports whether the register held a matching row.
	Found bool `json:"found"`
	// State is the canonical state of the matched row, Unknown when not found.
	State state.State `json:"state"`
	// RequiresAdjustment is true only for found items in the Active state.
	RequiresAdjustment bool `json:"requires_adjustment"`
	// AssetTag is the matched row's asset tag, when the register has one.
	AssetTag string `json:"asset_tag,omitempty"`
	// Identity is non-nil if and only if RequiresAdjustment is true.
	Identity *Identity `json:"identity,omitempty"`
	// Timestamp is when the scan was classified.
	Timestamp time.Time `json:"timestamp"`
}

// Message returns the operator-facing status line for the outcome.
func (o Outcome) Message() string {
	if !o.Found {
		return "Serial not found in the register"
	}
	return o.State.Label()
}
