// Package sessionstore persists finished and in-progress stock-check sessions.
//
// A session is stored as one JSON document keyed by its id. Three backends
// implement Store:
//
//   - MemoryStore keeps records in process memory (tests, local runs).
//   - ObjectStore writes <prefix><id>.json objects through core/storage.
//   - DBStore keeps one row per session in the stock_sessions table.
//
// New selects a backend from Config. Every Store also satisfies
// ledger.Persister, so it can be handed straight to a session.
package sessionstore
