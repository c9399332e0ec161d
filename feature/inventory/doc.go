// Package inventory exposes the stock verification session over HTTP.
//
// An operator uploads the asset register, then scans items one at a time.
// Each scan is classified against the register and recorded in the session;
// unknown serials must be kept or discarded before scanning continues.
//
// # HTTP Endpoints
//
//   - POST   /register               : upload the register (xlsx or csv)
//   - GET    /session                : session status
//   - DELETE /session                : start a new empty session
//   - POST   /scan                   : scan one serial or asset tag
//   - POST   /scan/keep              : keep the pending not-found scan
//   - POST   /scan/discard           : discard the pending not-found scan
//   - GET    /reports/reconciliation : expected vs scanned per state
//   - GET    /reports/missing        : stock items not scanned
//   - GET    /reports/adjustments    : items marked active
//   - GET    /reports/history        : scans of the session
//
// Reports answer JSON, or an xlsx download with ?format=xlsx.
package inventory
