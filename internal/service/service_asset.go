package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/metrics"
	"github.com/MKhiriev/go-wallet-tracker/internal/store"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// assetService is the concrete implementation of AssetService. Every
// operation verifies that the enclosing wallet belongs to the requesting user
// before touching the asset collection, so an asset is never reachable
// through a wallet the caller does not own. Reads return AssetReport values
// with per-asset valuation figures derived at response time.
type assetService struct {
	walletRepository store.WalletRepository
	assetRepository  store.AssetRepository
	logger           *logger.Logger
}

func NewAssetService(wallets store.WalletRepository, assets store.AssetRepository, logger *logger.Logger) AssetService {
	return &assetService{
		walletRepository: wallets,
		assetRepository:  assets,
		logger:           logger,
	}
}

func (s *assetService) ListAssets(ctx context.Context, walletID, userID string) ([]models.AssetReport, error) {
	log := logger.FromContext(ctx)

	if err := s.verifyWalletOwnership(ctx, walletID, userID); err != nil {
		return nil, err
	}

	assets, err := s.assetRepository.ListAssets(ctx, walletID)
	if err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("listing assets failed")
		return nil, fmt.Errorf("listing assets failed: %w", err)
	}

	reports := make([]models.AssetReport, 0, len(assets))
	for _, asset := range assets {
		reports = append(reports, metrics.CalculateAssetMetrics(asset))
	}

	return reports, nil
}

func (s *assetService) GetAsset(ctx context.Context, assetID, walletID, userID string) (models.AssetReport, error) {
	log := logger.FromContext(ctx)

	if err := s.verifyWalletOwnership(ctx, walletID, userID); err != nil {
		return models.AssetReport{}, err
	}

	asset, err := s.assetRepository.GetAsset(ctx, assetID, walletID)
	if err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset lookup failed")
		return models.AssetReport{}, fmt.Errorf("asset lookup failed: %w", err)
	}

	return metrics.CalculateAssetMetrics(asset), nil
}

// CreateAsset records a new holding in the wallet given by asset.WalletID.
//
// Returns ErrInvalidDataProvided if the type is not a known asset type, if
// symbol or name is empty, or if any numeric field is negative. Zero
// quantities and prices are valid.
func (s *assetService) CreateAsset(ctx context.Context, userID string, asset models.Asset) (models.AssetReport, error) {
	log := logger.FromContext(ctx)

	if err := s.verifyWalletOwnership(ctx, asset.WalletID, userID); err != nil {
		return models.AssetReport{}, err
	}

	if !asset.Type.IsValid() || asset.Symbol == "" || asset.Name == "" ||
		asset.Quantity < 0 || asset.PurchasePrice < 0 || asset.CurrentPrice < 0 {
		log.Error().Str("wallet_id", asset.WalletID).Any("asset", asset).Msg("invalid asset data provided")
		return models.AssetReport{}, ErrInvalidDataProvided
	}

	created, err := s.assetRepository.CreateAsset(ctx, asset)
	if err != nil {
		log.Err(err).Str("wallet_id", asset.WalletID).Msg("asset creation ended with error")
		return models.AssetReport{}, fmt.Errorf("asset creation ended with error: %w", err)
	}

	return metrics.CalculateAssetMetrics(created), nil
}

// UpdateAsset applies the supplied fields of patch to an existing asset.
// Absent fields keep their stored values; a present zero value is applied.
func (s *assetService) UpdateAsset(ctx context.Context, assetID, walletID, userID string, patch models.AssetPatch) (models.AssetReport, error) {
	log := logger.FromContext(ctx)

	if err := s.verifyWalletOwnership(ctx, walletID, userID); err != nil {
		return models.AssetReport{}, err
	}

	if err := validateAssetPatch(patch); err != nil {
		log.Error().Str("asset_id", assetID).Msg("invalid asset patch provided")
		return models.AssetReport{}, err
	}

	updated, err := s.assetRepository.UpdateAsset(ctx, assetID, walletID, patch)
	if err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset update ended with error")
		return models.AssetReport{}, fmt.Errorf("asset update ended with error: %w", err)
	}

	return metrics.CalculateAssetMetrics(updated), nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID, walletID, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.verifyWalletOwnership(ctx, walletID, userID); err != nil {
		return err
	}

	if err := s.assetRepository.DeleteAsset(ctx, assetID, walletID); err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset deletion ended with error")
		return fmt.Errorf("asset deletion ended with error: %w", err)
	}

	return nil
}

// verifyWalletOwnership confirms that walletID belongs to userID. A wallet
// owned by someone else fails with the same store.ErrWalletNotFound as a
// wallet that does not exist.
func (s *assetService) verifyWalletOwnership(ctx context.Context, walletID, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.walletRepository.GetWallet(ctx, walletID, userID); err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("wallet ownership check failed")
		return fmt.Errorf("wallet ownership check failed: %w", err)
	}

	return nil
}

func validateAssetPatch(patch models.AssetPatch) error {
	if patch.Type != nil && !patch.Type.IsValid() {
		return ErrInvalidDataProvided
	}
	if patch.Symbol != nil && *patch.Symbol == "" {
		return ErrInvalidDataProvided
	}
	if patch.Name != nil && *patch.Name == "" {
		return ErrInvalidDataProvided
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return ErrInvalidDataProvided
	}
	if patch.PurchasePrice != nil && *patch.PurchasePrice < 0 {
		return ErrInvalidDataProvided
	}
	if patch.CurrentPrice != nil && *patch.CurrentPrice < 0 {
		return ErrInvalidDataProvided
	}

	return nil
}
