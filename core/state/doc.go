// Package state maps lifecycle-state strings found in the asset register onto
// a fixed set of canonical states.
//
// Registers exported from the asset management system carry states in either
// Portuguese or English ("Estoque", "stock", "Em Reparo", "in repair"). This
// package is the only place that knows about those spellings; everything
// downstream compares State values.
//
// # Classification
//
//   - Active is the only state that requires a manual adjustment.
//   - Unknown means the raw value matched no alias.
//   - Every other state is an OK terminal classification.
package state
