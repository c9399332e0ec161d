// Package config loads the service configuration.
//
// Values come from environment variables, optionally seeded from a .env
// file, with defaults taken from the `default` struct tags of each section.
// Nested keys map to upper-case variables joined by underscores, so
// session.backend is read from SESSION_BACKEND.
//
// Sections: Server (port, timezone), Storage (MinIO/S3), Database (gorm),
// Log, Session (store backend) and Register (upload limits).
//
//	cfg, err := config.LoadConfig(".")
package config
