package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
)

// sqlCredentialRepository is the SQL-backed implementation of
// [CredentialRepository] against the "credentials" table. The table is kept
// separate from "users" so that secret material never travels with profile
// queries.
type sqlCredentialRepository struct {
	db     *DB
	logger *logger.Logger
}

func newSQLCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating sql credential repository")
	return &sqlCredentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqlCredentialRepository) GetCredential(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("password_hash").
		From("credentials").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*sqlCredentialRepository.GetCredential").Msg("error scanning credential row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return hash, nil
}

func (r *sqlCredentialRepository) SetCredential(ctx context.Context, userID string, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert("credentials").
		Columns("user_id", "password_hash").
		Values(userID, passwordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlCredentialRepository.SetCredential").Msg("error inserting credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
