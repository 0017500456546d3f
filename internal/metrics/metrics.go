// Package metrics derives valuation figures from stored wallet and asset
// records. All functions are pure: they read the raw quantity/price fields
// and return computed reports without touching storage or raising errors.
// Zero and negative inputs propagate algebraically.
package metrics

import "github.com/MKhiriev/go-wallet-tracker/models"

// CalculateAssetMetrics computes the derived valuation fields for a single
// asset: total value, profit/loss and return percentage. The percentage is
// zero-guarded so an asset with no invested value reports 0, never NaN.
func CalculateAssetMetrics(asset models.Asset) models.AssetReport {
	totalValue := asset.Quantity * asset.CurrentPrice
	investedValue := asset.Quantity * asset.PurchasePrice
	profitLoss := totalValue - investedValue

	var profitLossPercentage float64
	if investedValue > 0 {
		profitLossPercentage = profitLoss / investedValue * 100
	}

	return models.AssetReport{
		Asset:                asset,
		TotalValue:           totalValue,
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: profitLossPercentage,
	}
}

// CalculateWalletMetrics aggregates asset valuations into a wallet report.
// Summation order does not affect the result the system cares about;
// floating-point rounding differences are accepted.
func CalculateWalletMetrics(wallet models.Wallet, assets []models.Asset) models.WalletReport {
	var totalValue, spentAmount float64
	for _, asset := range assets {
		report := CalculateAssetMetrics(asset)
		totalValue += report.TotalValue
		spentAmount += asset.Quantity * asset.PurchasePrice
	}

	profitLoss := totalValue - spentAmount

	var profitLossPercentage float64
	if spentAmount > 0 {
		profitLossPercentage = profitLoss / spentAmount * 100
	}

	return models.WalletReport{
		Wallet:               wallet,
		TotalValue:           totalValue,
		SpentAmount:          spentAmount,
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: profitLossPercentage,
		AssetCount:           len(assets),
	}
}
