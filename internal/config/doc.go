// Package config provides configuration structures and utilities for
// taskreport. It defines the database location, listing filter, and report
// output preferences, populated from CLI flags and an optional yaml file.
package config
