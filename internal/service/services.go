package service

import (
	"github.com/MKhiriev/go-wallet-tracker/internal/config"
	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/store"
)

type Services struct {
	AuthService   AuthService
	WalletService WalletService
	AssetService  AssetService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.CredentialRepository, cfg.App, logger),
		WalletService: NewWalletService(storages.WalletRepository, storages.AssetRepository, logger),
		AssetService:  NewAssetService(storages.WalletRepository, storages.AssetRepository, logger),
	}
}
