package session

import (
	"errors"

	"stock-check/core/scan"
)

var (
	// ErrNoRegister is returned when scanning before any register is loaded.
	ErrNoRegister = errors.New("no register loaded")
	// ErrDecisionPending is returned while a not-found scan awaits keep or discard.
	ErrDecisionPending = errors.New("a not-found scan is awaiting a decision")
	// ErrNoPendingDecision is returned by Keep and Discard when nothing is pending.
	ErrNoPendingDecision = errors.New("no not-found scan is awaiting a decision")
	// ErrConfirmationRequired is returned when importing a register would
	// discard an ongoing session without the operator confirming it.
	ErrConfirmationRequired = errors.New("importing a new register clears the current session and must be confirmed")
)

// Kind classifies the result of a scan for the operator.
type Kind string

const (
	KindAccepted     Kind = "accepted"
	KindAdjustment   Kind = "adjustment"
	KindUnknownState Kind = "unknown_state"
	KindNotFound     Kind = "not_found"
	KindDuplicate    Kind = "duplicate"
	KindRejected     Kind = "rejected"
)

// Result is what the operator sees after a scan.
type Result struct {
	// Kind drives the operator's next action.
	Kind Kind `json:"kind"`
	// Message is a short, specific description of the result.
	Message string `json:"message"`
	// Serial is the normalized input, empty when rejected.
	Serial string `json:"serial,omitempty"`
	// Outcome is the classified scan. Nil when rejected.
	Outcome *scan.Outcome `json:"outcome,omitempty"`
	// Pending reports whether scanning is now blocked on a decision.
	Pending bool `json:"pending"`
}

// Status is a read-only summary of the session.
type Status struct {
	SessionID        string        `json:"session_id"`
	RegisterLoaded   bool          `json:"register_loaded"`
	RegisterFilename string        `json:"register_filename,omitempty"`
	RegisterRows     int           `json:"register_rows"`
	Scanned          int           `json:"scanned"`
	Pending          *scan.Outcome `json:"pending,omitempty"`
	Latest           *scan.Outcome `json:"latest,omitempty"`
}

// ImportSummary describes a freshly loaded register.
type ImportSummary struct {
	SessionID    string         `json:"session_id"`
	Filename     string         `json:"filename"`
	Rows         int            `json:"rows"`
	HasAssetTags bool           `json:"has_asset_tags"`
	Collisions   int            `json:"collisions"`
	States       map[string]int `json:"states"`
}
