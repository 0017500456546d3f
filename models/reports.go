package models

// AssetReport is an Asset together with its derived valuation fields.
// Reports are computed on every read and never persisted.
type AssetReport struct {
	Asset

	// TotalValue is quantity × current price.
	TotalValue float64 `json:"totalValue"`

	// ProfitLoss is total value minus invested value (quantity × purchase price).
	ProfitLoss float64 `json:"profitLoss"`

	// ProfitLossPercentage is profit/loss relative to the invested value,
	// in percent. Zero when nothing was invested, never NaN.
	ProfitLossPercentage float64 `json:"profitLossPercentage"`
}

// WalletReport is a Wallet together with valuation aggregated over its assets.
type WalletReport struct {
	Wallet

	// TotalValue is the sum of asset total values.
	TotalValue float64 `json:"totalValue"`

	// SpentAmount is the sum of quantity × purchase price across assets.
	SpentAmount float64 `json:"spentAmount"`

	// ProfitLoss is total value minus spent amount.
	ProfitLoss float64 `json:"profitLoss"`

	// ProfitLossPercentage is profit/loss relative to the spent amount,
	// in percent. Zero when nothing was spent, never NaN.
	ProfitLossPercentage float64 `json:"profitLossPercentage"`

	// AssetCount is the number of assets held by the wallet.
	AssetCount int `json:"assetCount"`
}
