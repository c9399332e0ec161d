// Package scan resolves a scanned identifier against the register and turns
// the result into an immutable Outcome.
//
// Matching tries the serial number first and falls back to the internal
// asset tag, so the operator does not need to know which label they scanned.
// Classification is independent per scan: there are no transitions between
// states, only a label for the current register snapshot.
package scan
