package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// fileWalletRepository is the JSON-file implementation of [WalletRepository].
// It also holds the assets collection so that wallet deletion can cascade.
// Lock ordering on delete is wallets before assets.
type fileWalletRepository struct {
	wallets *jsonCollection[models.Wallet]
	assets  *jsonCollection[models.Asset]
	ids     IDGenerator
	logger  *logger.Logger
}

func newFileWalletRepository(wallets *jsonCollection[models.Wallet], assets *jsonCollection[models.Asset], ids IDGenerator, logger *logger.Logger) WalletRepository {
	logger.Debug().Msg("creating file wallet repository")
	return &fileWalletRepository{
		wallets: wallets,
		assets:  assets,
		ids:     ids,
		logger:  logger,
	}
}

func (r *fileWalletRepository) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	r.wallets.mu.Lock()
	defer r.wallets.mu.Unlock()

	owned := make([]models.Wallet, 0)
	for _, wallet := range r.wallets.load(ctx) {
		if wallet.UserID == userID {
			owned = append(owned, wallet)
		}
	}

	return owned, nil
}

func (r *fileWalletRepository) GetWallet(ctx context.Context, walletID, userID string) (models.Wallet, error) {
	r.wallets.mu.Lock()
	defer r.wallets.mu.Unlock()

	for _, wallet := range r.wallets.load(ctx) {
		if wallet.WalletID == walletID && wallet.UserID == userID {
			return wallet, nil
		}
	}

	return models.Wallet{}, ErrWalletNotFound
}

func (r *fileWalletRepository) CreateWallet(ctx context.Context, wallet models.Wallet) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	r.wallets.mu.Lock()
	defer r.wallets.mu.Unlock()

	now := time.Now().UTC()
	wallet.WalletID = r.ids.Generate()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	records := append(r.wallets.load(ctx), wallet)
	if err := r.wallets.write(records); err != nil {
		log.Err(err).Msg("error persisting wallets collection")
		return models.Wallet{}, err
	}

	return wallet, nil
}

func (r *fileWalletRepository) UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	r.wallets.mu.Lock()
	defer r.wallets.mu.Unlock()

	records := r.wallets.load(ctx)
	for i, wallet := range records {
		if wallet.WalletID != walletID || wallet.UserID != userID {
			continue
		}

		if patch.Name != nil {
			wallet.Name = *patch.Name
		}
		wallet.UpdatedAt = time.Now().UTC()
		records[i] = wallet

		if err := r.wallets.write(records); err != nil {
			log.Err(err).Msg("error persisting wallets collection")
			return models.Wallet{}, err
		}

		return wallet, nil
	}

	return models.Wallet{}, ErrWalletNotFound
}

// DeleteWallet removes the matching wallet and every asset referencing it,
// rewriting both collections.
func (r *fileWalletRepository) DeleteWallet(ctx context.Context, walletID, userID string) error {
	log := logger.FromContext(ctx)

	r.wallets.mu.Lock()
	defer r.wallets.mu.Unlock()

	records := r.wallets.load(ctx)
	kept := make([]models.Wallet, 0, len(records))
	for _, wallet := range records {
		if wallet.WalletID == walletID && wallet.UserID == userID {
			continue
		}
		kept = append(kept, wallet)
	}

	if len(kept) == len(records) {
		return ErrWalletNotFound
	}

	if err := r.wallets.write(kept); err != nil {
		log.Err(err).Msg("error persisting wallets collection")
		return err
	}

	r.assets.mu.Lock()
	defer r.assets.mu.Unlock()

	assets := r.assets.load(ctx)
	keptAssets := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if asset.WalletID == walletID {
			continue
		}
		keptAssets = append(keptAssets, asset)
	}

	if err := r.assets.write(keptAssets); err != nil {
		log.Err(err).Msg("error persisting assets collection after cascade")
		return err
	}

	return nil
}
