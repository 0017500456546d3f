package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// sqlWalletRepository is the SQL-backed implementation of [WalletRepository]
// against the "wallets" table. Wallet deletion cascades to the "assets"
// table inside a single transaction.
type sqlWalletRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func newSQLWalletRepository(db *DB, ids IDGenerator, logger *logger.Logger) WalletRepository {
	logger.Debug().Msg("creating sql wallet repository")
	return &sqlWalletRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *sqlWalletRepository) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "user_id", "name", "created_at", "updated_at").
		From("wallets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlWalletRepository.ListWallets").Msg("error querying wallets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	wallets := make([]models.Wallet, 0)
	for rows.Next() {
		var wallet models.Wallet
		if err := rows.Scan(&wallet.WalletID, &wallet.UserID, &wallet.Name, &wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		wallets = append(wallets, wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return wallets, nil
}

func (r *sqlWalletRepository) GetWallet(ctx context.Context, walletID, userID string) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "user_id", "name", "created_at", "updated_at").
		From("wallets").
		Where(sq.Eq{"id": walletID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var wallet models.Wallet
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&wallet.WalletID, &wallet.UserID, &wallet.Name, &wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Wallet{}, ErrWalletNotFound
		}

		log.Err(err).Str("func", "*sqlWalletRepository.GetWallet").Msg("error scanning wallet row")
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wallet, nil
}

func (r *sqlWalletRepository) CreateWallet(ctx context.Context, wallet models.Wallet) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	wallet.WalletID = r.ids.Generate()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	query, args, err := r.db.builder().
		Insert("wallets").
		Columns("id", "user_id", "name", "created_at", "updated_at").
		Values(wallet.WalletID, wallet.UserID, wallet.Name, wallet.CreatedAt, wallet.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlWalletRepository.CreateWallet").Msg("error inserting wallet")
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return wallet, nil
}

func (r *sqlWalletRepository) UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder().
		Update("wallets").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": walletID, "user_id": userID})
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlWalletRepository.UpdateWallet").Msg("error updating wallet")
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Wallet{}, ErrWalletNotFound
	}

	return r.GetWallet(ctx, walletID, userID)
}

// DeleteWallet removes the wallet and its assets in one transaction so a
// partial failure cannot leave orphaned assets behind.
func (r *sqlWalletRepository) DeleteWallet(ctx context.Context, walletID, userID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteWallet, walletArgs, err := r.db.builder().
		Delete("wallets").
		Where(sq.Eq{"id": walletID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteWallet, walletArgs...)
	if err != nil {
		log.Err(err).Str("func", "*sqlWalletRepository.DeleteWallet").Msg("error deleting wallet")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrWalletNotFound
	}

	deleteAssets, assetArgs, err := r.db.builder().
		Delete("assets").
		Where(sq.Eq{"wallet_id": walletID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteAssets, assetArgs...); err != nil {
		log.Err(err).Str("func", "*sqlWalletRepository.DeleteWallet").Msg("error cascading asset delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
