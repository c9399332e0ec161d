// Package database opens the optional relational database used to persist
// stock-check sessions.
//
// Connect supports MySQL for deployments and SQLite for local runs and
// tests. The inspector helpers read a table's columns so stores can verify
// that an existing schema carries what they need before using it.
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "stock_sessions", []string{"session_id", "payload"})
package database
