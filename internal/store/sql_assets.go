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

// sqlAssetRepository is the SQL-backed implementation of [AssetRepository]
// against the "assets" table.
type sqlAssetRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func newSQLAssetRepository(db *DB, ids IDGenerator, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating sql asset repository")
	return &sqlAssetRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func scanAsset(row interface{ Scan(...any) error }) (models.Asset, error) {
	var asset models.Asset
	err := row.Scan(
		&asset.AssetID, &asset.WalletID, &asset.Type, &asset.Symbol, &asset.Name,
		&asset.Quantity, &asset.PurchasePrice, &asset.CurrentPrice,
		&asset.CreatedAt, &asset.UpdatedAt,
	)
	return asset, err
}

func (r *sqlAssetRepository) selectAssets() sq.SelectBuilder {
	return r.db.builder().
		Select("id", "wallet_id", "type", "symbol", "name",
			"quantity", "purchase_price", "current_price",
			"created_at", "updated_at").
		From("assets")
}

func (r *sqlAssetRepository) ListAssets(ctx context.Context, walletID string) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectAssets().
		Where(sq.Eq{"wallet_id": walletID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlAssetRepository.ListAssets").Msg("error querying assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}

func (r *sqlAssetRepository) GetAsset(ctx context.Context, assetID, walletID string) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectAssets().
		Where(sq.Eq{"id": assetID, "wallet_id": walletID}).
		ToSql()
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}

		log.Err(err).Str("func", "*sqlAssetRepository.GetAsset").Msg("error scanning asset row")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

func (r *sqlAssetRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	asset.AssetID = r.ids.Generate()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	query, args, err := r.db.builder().
		Insert("assets").
		Columns("id", "wallet_id", "type", "symbol", "name",
			"quantity", "purchase_price", "current_price",
			"created_at", "updated_at").
		Values(asset.AssetID, asset.WalletID, asset.Type, asset.Symbol, asset.Name,
			asset.Quantity, asset.PurchasePrice, asset.CurrentPrice,
			asset.CreatedAt, asset.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlAssetRepository.CreateAsset").Msg("error inserting asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return asset, nil
}

func (r *sqlAssetRepository) UpdateAsset(ctx context.Context, assetID, walletID string, patch models.AssetPatch) (models.Asset, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder().
		Update("assets").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": assetID, "wallet_id": walletID})
	if patch.Type != nil {
		update = update.Set("type", *patch.Type)
	}
	if patch.Symbol != nil {
		update = update.Set("symbol", *patch.Symbol)
	}
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Quantity != nil {
		update = update.Set("quantity", *patch.Quantity)
	}
	if patch.PurchasePrice != nil {
		update = update.Set("purchase_price", *patch.PurchasePrice)
	}
	if patch.CurrentPrice != nil {
		update = update.Set("current_price", *patch.CurrentPrice)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlAssetRepository.UpdateAsset").Msg("error updating asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Asset{}, ErrAssetNotFound
	}

	return r.GetAsset(ctx, assetID, walletID)
}

func (r *sqlAssetRepository) DeleteAsset(ctx context.Context, assetID, walletID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete("assets").
		Where(sq.Eq{"id": assetID, "wallet_id": walletID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlAssetRepository.DeleteAsset").Msg("error deleting asset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAssetNotFound
	}

	return nil
}
