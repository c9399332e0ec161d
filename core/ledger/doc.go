// Package ledger keeps the ordered record of scans performed during one
// operator session.
//
// Entries are kept newest-first. The ledger only changes through three
// operations: Append (front insert, duplicate-aware), RemoveAt/RemoveFront
// (operator discards a not-found scan) and Clear/Reset.
//
// Every accepted Append is written to the Persister before it returns. A
// failed write is reported as a *PersistError but the in-memory entry stays:
// the next successful save brings the store back in sync.
//
// # Persisted form
//
// Record is the JSON document written for each save:
//
//	{
//	  "session_id": "20260108_203000",
//	  "started_at": "2026-01-08T20:30:00-03:00",
//	  "ended_at": "2026-01-08T20:41:12-03:00",
//	  "lansweeper_file": "export.xlsx",
//	  "total_scanned": 2,
//	  "items": [ ... ]
//	}
package ledger
