// Package metrics exposes prometheus collectors for scanning activity,
// register imports and session saves.
package metrics
