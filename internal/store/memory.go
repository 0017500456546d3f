package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-tracker/models"
)

// memoryStorage is a map-backed implementation of all four repository
// contracts. It exists for tests and ephemeral deployments; semantics are
// identical to the durable backends, including scope-key matching and
// cascade deletion.
type memoryStorage struct {
	mu          sync.Mutex
	ids         IDGenerator
	users       []models.User
	wallets     []models.Wallet
	assets      []models.Asset
	credentials map[string]string
}

// NewMemoryStorages constructs a Storages value where every repository is
// backed by the same in-memory state.
func NewMemoryStorages(ids IDGenerator) *Storages {
	m := &memoryStorage{
		ids:         ids,
		credentials: make(map[string]string),
	}

	return &Storages{
		UserRepository:       m,
		CredentialRepository: m,
		WalletRepository:     m,
		AssetRepository:      m,
	}
}

func (m *memoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.UserID = m.ids.Generate()
	m.users = append(m.users, user)
	return user, nil
}

func (m *memoryStorage) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (m *memoryStorage) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (m *memoryStorage) GetCredential(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash, ok := m.credentials[userID]
	if !ok {
		return "", ErrCredentialNotFound
	}
	return hash, nil
}

func (m *memoryStorage) SetCredential(_ context.Context, userID string, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.credentials[userID] = passwordHash
	return nil
}

func (m *memoryStorage) ListWallets(_ context.Context, userID string) ([]models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := make([]models.Wallet, 0)
	for _, wallet := range m.wallets {
		if wallet.UserID == userID {
			owned = append(owned, wallet)
		}
	}
	return owned, nil
}

func (m *memoryStorage) GetWallet(_ context.Context, walletID, userID string) (models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, wallet := range m.wallets {
		if wallet.WalletID == walletID && wallet.UserID == userID {
			return wallet, nil
		}
	}
	return models.Wallet{}, ErrWalletNotFound
}

func (m *memoryStorage) CreateWallet(_ context.Context, wallet models.Wallet) (models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	wallet.WalletID = m.ids.Generate()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now
	m.wallets = append(m.wallets, wallet)
	return wallet, nil
}

func (m *memoryStorage) UpdateWallet(_ context.Context, walletID, userID string, patch models.WalletPatch) (models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, wallet := range m.wallets {
		if wallet.WalletID != walletID || wallet.UserID != userID {
			continue
		}

		if patch.Name != nil {
			wallet.Name = *patch.Name
		}
		wallet.UpdatedAt = time.Now().UTC()
		m.wallets[i] = wallet
		return wallet, nil
	}
	return models.Wallet{}, ErrWalletNotFound
}

func (m *memoryStorage) DeleteWallet(_ context.Context, walletID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]models.Wallet, 0, len(m.wallets))
	for _, wallet := range m.wallets {
		if wallet.WalletID == walletID && wallet.UserID == userID {
			continue
		}
		kept = append(kept, wallet)
	}
	if len(kept) == len(m.wallets) {
		return ErrWalletNotFound
	}
	m.wallets = kept

	keptAssets := make([]models.Asset, 0, len(m.assets))
	for _, asset := range m.assets {
		if asset.WalletID == walletID {
			continue
		}
		keptAssets = append(keptAssets, asset)
	}
	m.assets = keptAssets

	return nil
}

func (m *memoryStorage) ListAssets(_ context.Context, walletID string) ([]models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := make([]models.Asset, 0)
	for _, asset := range m.assets {
		if asset.WalletID == walletID {
			owned = append(owned, asset)
		}
	}
	return owned, nil
}

func (m *memoryStorage) GetAsset(_ context.Context, assetID, walletID string) (models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, asset := range m.assets {
		if asset.AssetID == assetID && asset.WalletID == walletID {
			return asset, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

func (m *memoryStorage) CreateAsset(_ context.Context, asset models.Asset) (models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	asset.AssetID = m.ids.Generate()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	m.assets = append(m.assets, asset)
	return asset, nil
}

func (m *memoryStorage) UpdateAsset(_ context.Context, assetID, walletID string, patch models.AssetPatch) (models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, asset := range m.assets {
		if asset.AssetID != assetID || asset.WalletID != walletID {
			continue
		}

		applyAssetPatch(&asset, patch)
		asset.UpdatedAt = time.Now().UTC()
		m.assets[i] = asset
		return asset, nil
	}
	return models.Asset{}, ErrAssetNotFound
}

func (m *memoryStorage) DeleteAsset(_ context.Context, assetID, walletID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]models.Asset, 0, len(m.assets))
	for _, asset := range m.assets {
		if asset.AssetID == assetID && asset.WalletID == walletID {
			continue
		}
		kept = append(kept, asset)
	}
	if len(kept) == len(m.assets) {
		return ErrAssetNotFound
	}
	m.assets = kept

	return nil
}
