package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-wallet-tracker/internal/config"
	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/utils"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// Storages bundles one repository per collection. All repositories of a
// Storages value share the same backend.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
	WalletRepository     WalletRepository
	AssetRepository      AssetRepository
}

// File names of the JSON-file backend, one entity kind per file under the
// configured data directory.
const (
	usersFile       = "users.json"
	walletsFile     = "wallets.json"
	assetsFile      = "assets.json"
	credentialsFile = "passwords.json"
)

// NewStorages selects and constructs the persistence backend from cfg.
//
// A non-empty DSN selects the SQL backend (PostgreSQL for postgres:// URIs,
// SQLite otherwise) and runs pending migrations. Otherwise the JSON-file
// backend is initialized under cfg.DataDir, creating empty collection files
// if none exist.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DSN != "" {
		return newSQLStorages(ctx, cfg, log)
	}

	return newFileStorages(cfg.DataDir, log)
}

func newFileStorages(dataDir string, log *logger.Logger) (*Storages, error) {
	log.Info().Str("data_dir", dataDir).Msg("using JSON file storage backend")

	users := newJSONCollection[models.User](filepath.Join(dataDir, usersFile), log)
	wallets := newJSONCollection[models.Wallet](filepath.Join(dataDir, walletsFile), log)
	assets := newJSONCollection[models.Asset](filepath.Join(dataDir, assetsFile), log)
	credentials := newJSONTable(filepath.Join(dataDir, credentialsFile), log)

	if err := users.init(); err != nil {
		return nil, fmt.Errorf("error initializing users collection: %w", err)
	}
	if err := wallets.init(); err != nil {
		return nil, fmt.Errorf("error initializing wallets collection: %w", err)
	}
	if err := assets.init(); err != nil {
		return nil, fmt.Errorf("error initializing assets collection: %w", err)
	}
	if err := credentials.init(); err != nil {
		return nil, fmt.Errorf("error initializing credentials table: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:       newFileUserRepository(users, ids, log),
		CredentialRepository: newFileCredentialRepository(credentials, log),
		WalletRepository:     newFileWalletRepository(wallets, assets, ids, log),
		AssetRepository:      newFileAssetRepository(assets, ids, log),
	}, nil
}

func newSQLStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:       newSQLUserRepository(db, ids, log),
		CredentialRepository: newSQLCredentialRepository(db, log),
		WalletRepository:     newSQLWalletRepository(db, ids, log),
		AssetRepository:      newSQLAssetRepository(db, ids, log),
	}, nil
}
