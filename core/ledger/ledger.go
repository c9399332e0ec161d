package ledger

import (
	"context"
	"strings"
	"time"

	"stock-check/core/scan"
)

// Ledger is the newest-first, append-only record of one session's scans.
// It is not safe for concurrent use; the owning session serializes access.
type Ledger struct {
	meta      Meta
	items     []scan.Outcome
	persister Persister
	revision  uint64
	now       func() time.Time
}

// New creates an empty ledger. A nil persister disables saving.
func New(meta Meta, persister Persister) *Ledger {
	return &Ledger{
		meta:      meta,
		persister: persister,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the ended_at field of saves.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Meta returns the session identity.
func (l *Ledger) Meta() Meta { return l.meta }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.items) }

// Revision increases on every mutation. Equal revisions mean equal contents.
func (l *Ledger) Revision() uint64 { return l.revision }

// Items returns a copy of the entries, newest first.
func (l *Ledger) Items() []scan.Outcome {
	out := make([]scan.Outcome, len(l.items))
	copy(out, l.items)
	return out
}

// Latest returns the most recent entry.
func (l *Ledger) Latest() (scan.Outcome, bool) {
	if len(l.items) == 0 {
		return scan.Outcome{}, false
	}
	return l.items[0], true
}

// Contains reports whether an entry with the given matched serial exists.
func (l *Ledger) Contains(serial string) bool {
	key := serialKey(serial)
	for _, it := range l.items {
		if serialKey(it.MatchedSerial) == key {
			return true
		}
	}
	return false
}

// Append inserts the outcome at the front and saves the ledger. Duplicates
// are rejected without saving. A save failure is returned as *PersistError
// with status Appended.
func (l *Ledger) Append(ctx context.Context, o scan.Outcome) (AppendStatus, error) {
	if l.Contains(o.MatchedSerial) {
		return Duplicate, nil
	}

	l.items = append(l.items, scan.Outcome{})
	copy(l.items[1:], l.items)
	l.items[0] = o
	l.revision++

	return Appended, l.Save(ctx)
}

// RemoveFront removes and returns the most recent entry.
func (l *Ledger) RemoveFront() (scan.Outcome, bool) {
	return l.RemoveAt(0)
}

// RemoveAt removes and returns the entry at position i (0 is newest).
func (l *Ledger) RemoveAt(i int) (scan.Outcome, bool) {
	if i < 0 || i >= len(l.items) {
		return scan.Outcome{}, false
	}
	removed := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.revision++
	return removed, true
}

// Clear drops every entry, keeping the session identity.
func (l *Ledger) Clear() {
	l.items = nil
	l.revision++
}

// Reset drops every entry and starts a new session identity.
func (l *Ledger) Reset(meta Meta) {
	l.meta = meta
	l.Clear()
}

// Restore replaces the ledger contents with a persisted record.
func (l *Ledger) Restore(rec *Record) {
	l.meta = Meta{
		SessionID:        rec.SessionID,
		StartedAt:        rec.StartedAt,
		RegisterFilename: rec.LansweeperFile,
	}
	l.items = make([]scan.Outcome, len(rec.Items))
	copy(l.items, rec.Items)
	l.revision++
}

// Snapshot returns a serializable copy of the ledger.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{Meta: l.meta, Items: l.Items()}
}

// Save writes the full ledger to the persister.
func (l *Ledger) Save(ctx context.Context) error {
	if l.persister == nil {
		return nil
	}
	rec := l.Snapshot().Record(l.now())
	if err := l.persister.Put(ctx, l.meta.SessionID, rec); err != nil {
		return &PersistError{SessionID: l.meta.SessionID, Err: err}
	}
	return nil
}

func serialKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
