// Package model defines the core data structures used throughout taskreport.
//
// This package contains the following main types:
//   - Task: A single row of the external tasks table
//   - Status: The integer status enum used by the owning system
//   - StatusSummary: Per-status row counts for the summary block
//   - Report: The aggregate handed to the report writers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Both the database and report packages need these types, so
// centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
