package ledger

import (
	"context"
	"fmt"
	"time"

	"stock-check/core/scan"
)

// Meta identifies a session.
type Meta struct {
	SessionID        string    `json:"session_id"`
	StartedAt        time.Time `json:"started_at"`
	RegisterFilename string    `json:"register_filename"`
}

// Snapshot is a point-in-time copy of the ledger.
type Snapshot struct {
	Meta
	Items []scan.Outcome `json:"items"`
}

// Record is the persisted session document.
type Record struct {
	SessionID      string         `json:"session_id"`
	StartedAt      time.Time      `json:"started_at"`
	EndedAt        time.Time      `json:"ended_at"`
	LansweeperFile string         `json:"lansweeper_file"`
	TotalScanned   int            `json:"total_scanned"`
	Items          []scan.Outcome `json:"items"`
}

// Summary is the listing view of a persisted session.
type Summary struct {
	SessionID      string    `json:"session_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
	LansweeperFile string    `json:"lansweeper_file"`
	TotalScanned   int       `json:"total_scanned"`
}

// Summary drops the items of a record.
func (r *Record) Summary() Summary {
	return Summary{
		SessionID:      r.SessionID,
		StartedAt:      r.StartedAt,
		EndedAt:        r.EndedAt,
		LansweeperFile: r.LansweeperFile,
		TotalScanned:   r.TotalScanned,
	}
}

// Record converts the snapshot into its persisted form.
func (s Snapshot) Record(endedAt time.Time) *Record {
	items := s.Items
	if items == nil {
		items = []scan.Outcome{}
	}
	return &Record{
		SessionID:      s.SessionID,
		StartedAt:      s.StartedAt,
		EndedAt:        endedAt,
		LansweeperFile: s.RegisterFilename,
		TotalScanned:   len(items),
		Items:          items,
	}
}

// Persister durably stores session records, overwriting by session id.
type Persister interface {
	Put(ctx context.Context, sessionID string, rec *Record) error
}

// AppendStatus tells the caller what Append did with an outcome.
type AppendStatus int

const (
	// Appended means the outcome is now the newest entry.
	Appended AppendStatus = iota
	// Duplicate means an entry with the same matched serial already exists
	// and nothing changed.
	Duplicate
)

func (s AppendStatus) String() string {
	switch s {
	case Appended:
		return "appended"
	case Duplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("AppendStatus(%d)", int(s))
	}
}

// PersistError wraps a failed save. The in-memory mutation it follows has
// already been applied.
type PersistError struct {
	SessionID string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save session %s: %v", e.SessionID, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
