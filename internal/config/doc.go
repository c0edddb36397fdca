// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merges the three
// sources, and validates the result.
package config
