// Package config loads and merges the server configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order. The merged result is validated
// once at startup and treated as read-only afterwards.
package config
