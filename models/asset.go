package models

import "time"

// AssetType enumerates the supported asset categories.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeCash   AssetType = "cash"
	AssetTypeOther  AssetType = "other"
)

// IsValid reports whether t is a member of the asset type enumeration.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeStock, AssetTypeCrypto, AssetTypeCash, AssetTypeOther:
		return true
	default:
		return false
	}
}

// Asset is a single holding belonging to exactly one wallet.
// Quantity and prices are plain floating-point numbers; valuation is
// recomputed from them on every read and never persisted.
type Asset struct {
	// AssetID is the store-generated unique identifier of the asset.
	AssetID string `json:"id"`

	// WalletID is the owning wallet's identifier. All asset operations are
	// scoped by this key: an id match under a different wallet is "not found".
	WalletID string `json:"walletId"`

	// Type is one of stock, crypto, cash, other.
	Type AssetType `json:"type"`

	// Symbol is the ticker or short code of the holding (e.g. "AAPL").
	Symbol string `json:"symbol"`

	// Name is the display name of the holding (e.g. "Apple").
	Name string `json:"name"`

	// Quantity is the number of units held; may be fractional.
	Quantity float64 `json:"quantity"`

	// PurchasePrice is the per-unit acquisition price.
	PurchasePrice float64 `json:"purchasePrice"`

	// CurrentPrice is the per-unit market price supplied by the user.
	CurrentPrice float64 `json:"currentPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssetPatch carries the mutable asset fields for partial updates.
// Nil fields are left untouched by the store.
type AssetPatch struct {
	Type          *AssetType `json:"type"`
	Symbol        *string    `json:"symbol"`
	Name          *string    `json:"name"`
	Quantity      *float64   `json:"quantity"`
	PurchasePrice *float64   `json:"purchasePrice"`
	CurrentPrice  *float64   `json:"currentPrice"`
}
