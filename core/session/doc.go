// Package session owns the state of one operator session: the loaded
// register, the ledger of scans and the pending not-found decision.
//
// Context is passed explicitly to every caller (HTTP handlers, the terminal
// scanner); nothing in the core reaches for global state. A Context
// serializes its operations with a mutex so a concurrent transport still
// sees one scan processed to completion before the next.
//
// # Scan workflow
//
//	raw input -> identifier.Normalize -> scan.Match -> scan.Classify -> ledger.Append
//
// Each call to Scan yields a Result whose Kind tells the operator what to do:
//
//   - accepted:   found, nothing to do
//   - adjustment: found in the active state, fix it in the system of record
//   - not_found:  recorded, but scanning is blocked until Keep or Discard
//   - duplicate:  already scanned in this session, nothing recorded
//   - rejected:   input was empty or too short, nothing recorded
//
// # Register replacement
//
// Importing a register while the ledger holds scans requires explicit
// confirmation and always starts a new session, so scans never refer to a
// register they were not matched against.
package session
