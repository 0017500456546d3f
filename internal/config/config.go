package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the wallet
// tracker server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token secrets, token lifetime
	// and the deployment environment.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend. Exactly one
	// backend is active per process: the JSON file store (DataDir) or the
	// SQL store (DSN).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the session
// token lifecycle and environment-dependent behavior.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance. The session cookie Max-Age is derived from the same value so
	// cookie and token expire together. Defaults to 168h (7 days).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Environment names the deployment environment ("development",
	// "production"). Session cookies are marked Secure in production.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// Storage selects and configures the persistence backend.
type Storage struct {
	// DataDir is the directory holding the JSON collection files
	// (users.json, wallets.json, assets.json, passwords.json).
	// Used when DSN is empty. Defaults to "data".
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DSN selects the SQL backend when non-empty. A postgres:// or
	// postgresql:// URI opens PostgreSQL via the pgx driver; any other
	// value is treated as a SQLite database file path.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. Defaults to ":8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request before the server
	// cancels it. Defaults to 30s.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Production is the Environment value that switches on production-only
// behavior such as Secure session cookies.
const Production = "production"

// IsProduction reports whether the server runs in the production environment.
func (cfg *StructuredConfig) IsProduction() bool {
	return cfg.App.IsProduction()
}

// IsProduction reports whether the app-level environment is production.
func (cfg App) IsProduction() bool {
	return cfg.Environment == Production
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
