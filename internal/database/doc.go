// Package database provides read-only SQLite access to the external
// tasks database.
//
// The database file and the tasks table are owned by a different system;
// this package never creates, migrates, or writes anything. It opens the
// file with mode=ro and issues a fixed set of SELECT queries.
//
// Design decision: We use SQLite via modernc.org/sqlite because:
// 1. The shared store is a plain SQLite file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Read performance is more than sufficient for a report run
package database
