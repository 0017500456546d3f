package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-tracker/models"
)

// IDGenerator produces fresh unique identifiers for newly created records.
// Identifiers are assigned exactly once at creation time and never reused.
type IDGenerator interface {
	Generate() string
}

// UserRepository is the data-access contract for the users collection.
type UserRepository interface {
	// CreateUser persists a new user with a store-assigned identifier.
	// Returns ErrEmailAlreadyExists if a user with the same email is present.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by exact (case-sensitive) email.
	// Returns ErrNoUserWasFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a user by identifier.
	// Returns ErrNoUserWasFound when no user matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// CredentialRepository maps user identifiers to password hashes. Credentials
// are persisted separately from profile data and are write-once: there is no
// update or delete operation.
type CredentialRepository interface {
	// GetCredential returns the password hash stored for userID.
	// Returns ErrCredentialNotFound when no credential exists.
	GetCredential(ctx context.Context, userID string) (string, error)

	// SetCredential stores the password hash for userID.
	SetCredential(ctx context.Context, userID string, passwordHash string) error
}

// WalletRepository is the data-access contract for the wallets collection.
// Every scoped operation matches both the wallet id and the owning user id;
// a scope mismatch is indistinguishable from absence (ErrWalletNotFound).
type WalletRepository interface {
	// ListWallets returns all wallets owned by userID.
	ListWallets(ctx context.Context, userID string) ([]models.Wallet, error)

	// GetWallet returns the wallet matching both walletID and userID.
	GetWallet(ctx context.Context, walletID, userID string) (models.Wallet, error)

	// CreateWallet persists a new wallet with a store-assigned identifier
	// and creation/update timestamps.
	CreateWallet(ctx context.Context, wallet models.Wallet) (models.Wallet, error)

	// UpdateWallet merges non-nil patch fields over the matching wallet and
	// refreshes its update timestamp.
	UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.Wallet, error)

	// DeleteWallet removes the matching wallet and cascades to delete every
	// asset owned by it, so no orphaned assets remain.
	DeleteWallet(ctx context.Context, walletID, userID string) error
}

// AssetRepository is the data-access contract for the assets collection.
// Every scoped operation matches both the asset id and the owning wallet id;
// a scope mismatch is indistinguishable from absence (ErrAssetNotFound).
type AssetRepository interface {
	// ListAssets returns all assets belonging to walletID.
	ListAssets(ctx context.Context, walletID string) ([]models.Asset, error)

	// GetAsset returns the asset matching both assetID and walletID.
	GetAsset(ctx context.Context, assetID, walletID string) (models.Asset, error)

	// CreateAsset persists a new asset with a store-assigned identifier
	// and creation/update timestamps.
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)

	// UpdateAsset merges non-nil patch fields over the matching asset and
	// refreshes its update timestamp.
	UpdateAsset(ctx context.Context, assetID, walletID string, patch models.AssetPatch) (models.Asset, error)

	// DeleteAsset removes the matching asset.
	DeleteAsset(ctx context.Context, assetID, walletID string) error
}
