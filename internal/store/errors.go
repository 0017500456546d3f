package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCredentialNotFound is returned when no password hash is stored for
	// the given user identifier.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrWalletNotFound is returned when a wallet operation targets an id
	// that does not exist under the given owner. Ownership mismatches are
	// deliberately indistinguishable from absence.
	ErrWalletNotFound = errors.New("wallet was not found")

	// ErrAssetNotFound is returned when an asset operation targets an id
	// that does not exist under the given wallet. Scope mismatches are
	// deliberately indistinguishable from absence.
	ErrAssetNotFound = errors.New("asset was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// SQL-backed repositories when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
