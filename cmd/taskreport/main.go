// Package main provides the entry point for the taskreport CLI.
//
// taskreport is a read-only reporting utility over the shared tasks
// database. It lists completed tasks and prints per-status counts.
//
// Usage:
//
//	taskreport
//	taskreport --db /path/to/shared.sqlite3 --status 0
//
// See --help for all available options.
package main

// main is the entry point for taskreport.
func main() {
	Execute()
}
