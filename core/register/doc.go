// Package register holds the imported asset register and the lookups the
// scanner needs against it.
//
// A register is built once from a tabular export (header plus rows) and is
// immutable afterwards. Importing a new file produces a new Index; nothing
// mutates an existing one.
//
// # Columns
//
// Required: Serialnumber, State, Name, lastuser.
// Optional: Ativo (internal asset tag) and Model.
//
// Header matching ignores case and surrounding whitespace. A table missing
// any required column is rejected with a *MissingColumnsError and no index is
// built.
//
// # Lookups
//
//   - FindBySerial: case-insensitive exact match on the serial number.
//   - FindByAssetTag: matches the asset tag, tolerating numeric cells that
//     were exported as floats (9856.0 matches a scanned 9856).
//   - CountByState: register rows per canonical state.
//
// Duplicate serials are tolerated: the first row wins and every later row is
// recorded as a Collision for diagnostics.
package register
