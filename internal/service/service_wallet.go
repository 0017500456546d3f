package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/metrics"
	"github.com/MKhiriev/go-wallet-tracker/internal/store"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// walletService is the concrete implementation of WalletService. Every read
// returns a WalletReport: the stored wallet plus valuation figures derived
// from the wallet's current assets at response time. Derived figures are
// never persisted.
type walletService struct {
	walletRepository store.WalletRepository
	assetRepository  store.AssetRepository
	logger           *logger.Logger
}

func NewWalletService(wallets store.WalletRepository, assets store.AssetRepository, logger *logger.Logger) WalletService {
	return &walletService{
		walletRepository: wallets,
		assetRepository:  assets,
		logger:           logger,
	}
}

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]models.WalletReport, error) {
	log := logger.FromContext(ctx)

	wallets, err := s.walletRepository.ListWallets(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing wallets failed")
		return nil, fmt.Errorf("listing wallets failed: %w", err)
	}

	reports := make([]models.WalletReport, 0, len(wallets))
	for _, wallet := range wallets {
		report, err := s.report(ctx, wallet)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *walletService) GetWallet(ctx context.Context, walletID, userID string) (models.WalletReport, error) {
	log := logger.FromContext(ctx)

	wallet, err := s.walletRepository.GetWallet(ctx, walletID, userID)
	if err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("wallet lookup failed")
		return models.WalletReport{}, fmt.Errorf("wallet lookup failed: %w", err)
	}

	return s.report(ctx, wallet)
}

// CreateWallet persists a new empty wallet for userID.
//
// Returns ErrInvalidDataProvided if name is empty.
func (s *walletService) CreateWallet(ctx context.Context, userID, name string) (models.WalletReport, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Str("user_id", userID).Msg("empty wallet name provided")
		return models.WalletReport{}, ErrInvalidDataProvided
	}

	wallet, err := s.walletRepository.CreateWallet(ctx, models.Wallet{UserID: userID, Name: name})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("wallet creation ended with error")
		return models.WalletReport{}, fmt.Errorf("wallet creation ended with error: %w", err)
	}

	// a fresh wallet has no assets; skip the asset query
	return metrics.CalculateWalletMetrics(wallet, nil), nil
}

// UpdateWallet renames a wallet. The patch must carry a non-empty name.
func (s *walletService) UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.WalletReport, error) {
	log := logger.FromContext(ctx)

	if patch.Name == nil || *patch.Name == "" {
		log.Error().Str("wallet_id", walletID).Msg("empty wallet name provided")
		return models.WalletReport{}, ErrInvalidDataProvided
	}

	wallet, err := s.walletRepository.UpdateWallet(ctx, walletID, userID, patch)
	if err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("wallet update ended with error")
		return models.WalletReport{}, fmt.Errorf("wallet update ended with error: %w", err)
	}

	return s.report(ctx, wallet)
}

// DeleteWallet removes the wallet and every asset it holds.
func (s *walletService) DeleteWallet(ctx context.Context, walletID, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.walletRepository.DeleteWallet(ctx, walletID, userID); err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("wallet deletion ended with error")
		return fmt.Errorf("wallet deletion ended with error: %w", err)
	}

	return nil
}

// report loads the wallet's assets and derives its valuation figures.
func (s *walletService) report(ctx context.Context, wallet models.Wallet) (models.WalletReport, error) {
	log := logger.FromContext(ctx)

	assets, err := s.assetRepository.ListAssets(ctx, wallet.WalletID)
	if err != nil {
		log.Err(err).Str("wallet_id", wallet.WalletID).Msg("listing wallet assets failed")
		return models.WalletReport{}, fmt.Errorf("listing wallet assets failed: %w", err)
	}

	return metrics.CalculateWalletMetrics(wallet, assets), nil
}
