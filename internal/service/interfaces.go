package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-tracker/models"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (models.User, error)
	SignIn(ctx context.Context, email, password string) (models.User, error)
	CurrentUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type WalletService interface {
	ListWallets(ctx context.Context, userID string) ([]models.WalletReport, error)
	GetWallet(ctx context.Context, walletID, userID string) (models.WalletReport, error)
	CreateWallet(ctx context.Context, userID, name string) (models.WalletReport, error)
	UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.WalletReport, error)
	DeleteWallet(ctx context.Context, walletID, userID string) error
}

type AssetService interface {
	ListAssets(ctx context.Context, walletID, userID string) ([]models.AssetReport, error)
	GetAsset(ctx context.Context, assetID, walletID, userID string) (models.AssetReport, error)
	CreateAsset(ctx context.Context, userID string, asset models.Asset) (models.AssetReport, error)
	UpdateAsset(ctx context.Context, assetID, walletID, userID string, patch models.AssetPatch) (models.AssetReport, error)
	DeleteAsset(ctx context.Context, assetID, walletID, userID string) error
}
