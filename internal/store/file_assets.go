package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// fileAssetRepository is the JSON-file implementation of [AssetRepository].
type fileAssetRepository struct {
	assets *jsonCollection[models.Asset]
	ids    IDGenerator
	logger *logger.Logger
}

func newFileAssetRepository(assets *jsonCollection[models.Asset], ids IDGenerator, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating file asset repository")
	return &fileAssetRepository{
		assets: assets,
		ids:    ids,
		logger: logger,
	}
}

func (r *fileAssetRepository) ListAssets(ctx context.Context, walletID string) ([]models.Asset, error) {
	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	owned := make([]models.Asset, 0)
	for _, asset := range r.assets.load(ctx) {
		if asset.WalletID == walletID {
			owned = append(owned, asset)
		}
	}

	return owned, nil
}

func (r *fileAssetRepository) GetAsset(ctx context.Context, assetID, walletID string) (models.Asset, error) {
	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	for _, asset := range r.assets.load(ctx) {
		if asset.AssetID == assetID && asset.WalletID == walletID {
			return asset, nil
		}
	}

	return models.Asset{}, ErrAssetNotFound
}

func (r *fileAssetRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	now := time.Now().UTC()
	asset.AssetID = r.ids.Generate()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	records := append(r.assets.load(ctx), asset)
	if err := r.assets.write(records); err != nil {
		log.Err(err).Msg("error persisting assets collection")
		return models.Asset{}, err
	}

	return asset, nil
}

func (r *fileAssetRepository) UpdateAsset(ctx context.Context, assetID, walletID string, patch models.AssetPatch) (models.Asset, error) {
	log := logger.FromContext(ctx)

	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	records := r.assets.load(ctx)
	for i, asset := range records {
		if asset.AssetID != assetID || asset.WalletID != walletID {
			continue
		}

		applyAssetPatch(&asset, patch)
		asset.UpdatedAt = time.Now().UTC()
		records[i] = asset

		if err := r.assets.write(records); err != nil {
			log.Err(err).Msg("error persisting assets collection")
			return models.Asset{}, err
		}

		return asset, nil
	}

	return models.Asset{}, ErrAssetNotFound
}

func (r *fileAssetRepository) DeleteAsset(ctx context.Context, assetID, walletID string) error {
	log := logger.FromContext(ctx)

	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	records := r.assets.load(ctx)
	kept := make([]models.Asset, 0, len(records))
	for _, asset := range records {
		if asset.AssetID == assetID && asset.WalletID == walletID {
			continue
		}
		kept = append(kept, asset)
	}

	if len(kept) == len(records) {
		return ErrAssetNotFound
	}

	if err := r.assets.write(kept); err != nil {
		log.Err(err).Msg("error persisting assets collection")
		return err
	}

	return nil
}

// applyAssetPatch merges the supplied (non-nil) patch fields over the asset.
func applyAssetPatch(asset *models.Asset, patch models.AssetPatch) {
	if patch.Type != nil {
		asset.Type = *patch.Type
	}
	if patch.Symbol != nil {
		asset.Symbol = *patch.Symbol
	}
	if patch.Name != nil {
		asset.Name = *patch.Name
	}
	if patch.Quantity != nil {
		asset.Quantity = *patch.Quantity
	}
	if patch.PurchasePrice != nil {
		asset.PurchasePrice = *patch.PurchasePrice
	}
	if patch.CurrentPrice != nil {
		asset.CurrentPrice = *patch.CurrentPrice
	}
}
