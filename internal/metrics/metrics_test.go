package metrics

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-wallet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAssetMetrics_ProfitableAsset(t *testing.T) {
	asset := models.Asset{
		Type:          models.AssetTypeStock,
		Symbol:        "AAPL",
		Name:          "Apple",
		Quantity:      10,
		PurchasePrice: 100,
		CurrentPrice:  150,
	}

	report := CalculateAssetMetrics(asset)

	assert.Equal(t, 1500.0, report.TotalValue)
	assert.Equal(t, 500.0, report.ProfitLoss)
	assert.Equal(t, 50.0, report.ProfitLossPercentage)
	assert.Equal(t, asset, report.Asset)
}

func TestCalculateAssetMetrics_ZeroInvestedValue(t *testing.T) {
	tests := []struct {
		name  string
		asset models.Asset
	}{
		{name: "zero quantity", asset: models.Asset{Quantity: 0, PurchasePrice: 100, CurrentPrice: 150}},
		{name: "zero purchase price", asset: models.Asset{Quantity: 5, PurchasePrice: 0, CurrentPrice: 3}},
		{name: "all zero", asset: models.Asset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CalculateAssetMetrics(tt.asset)

			assert.Equal(t, 0.0, report.ProfitLossPercentage)
			assert.False(t, math.IsNaN(report.ProfitLossPercentage))
		})
	}
}

func TestCalculateAssetMetrics_NegativeInputsPropagate(t *testing.T) {
	asset := models.Asset{Quantity: -2, PurchasePrice: 10, CurrentPrice: 15}

	report := CalculateAssetMetrics(asset)

	assert.Equal(t, -30.0, report.TotalValue)
	assert.Equal(t, -10.0, report.ProfitLoss)
	// invested value is negative, so the zero guard applies
	assert.Equal(t, 0.0, report.ProfitLossPercentage)
}

func TestCalculateAssetMetrics_LossMakingAsset(t *testing.T) {
	asset := models.Asset{Quantity: 4, PurchasePrice: 50, CurrentPrice: 25}

	report := CalculateAssetMetrics(asset)

	assert.Equal(t, 100.0, report.TotalValue)
	assert.Equal(t, -100.0, report.ProfitLoss)
	assert.Equal(t, -50.0, report.ProfitLossPercentage)
}

func TestCalculateWalletMetrics_AggregatesAssets(t *testing.T) {
	wallet := models.Wallet{WalletID: "w1", UserID: "u1", Name: "Retirement"}
	assets := []models.Asset{
		{Quantity: 10, PurchasePrice: 100, CurrentPrice: 150},
		{Quantity: 2, PurchasePrice: 500, CurrentPrice: 400},
		{Quantity: 1000, PurchasePrice: 1, CurrentPrice: 1},
	}

	report := CalculateWalletMetrics(wallet, assets)

	require.Equal(t, 3, report.AssetCount)
	assert.Equal(t, 1500.0+800.0+1000.0, report.TotalValue)
	assert.Equal(t, 1000.0+1000.0+1000.0, report.SpentAmount)
	assert.Equal(t, 300.0, report.ProfitLoss)
	assert.Equal(t, 10.0, report.ProfitLossPercentage)
	assert.Equal(t, wallet, report.Wallet)
}

// TestCalculateWalletMetrics_TotalEqualsSumOfAssetTotals pins the invariant
// that wallet total value equals the sum of per-asset total values.
func TestCalculateWalletMetrics_TotalEqualsSumOfAssetTotals(t *testing.T) {
	assets := []models.Asset{
		{Quantity: 0.5, PurchasePrice: 40000, CurrentPrice: 61234.56},
		{Quantity: 12, PurchasePrice: 3.33, CurrentPrice: 2.22},
		{Quantity: 0, PurchasePrice: 9, CurrentPrice: 9},
	}

	var sum float64
	for _, a := range assets {
		sum += CalculateAssetMetrics(a).TotalValue
	}

	report := CalculateWalletMetrics(models.Wallet{}, assets)
	assert.InDelta(t, sum, report.TotalValue, 1e-9)
}

func TestCalculateWalletMetrics_EmptyWallet(t *testing.T) {
	report := CalculateWalletMetrics(models.Wallet{WalletID: "w1"}, nil)

	assert.Equal(t, 0, report.AssetCount)
	assert.Equal(t, 0.0, report.TotalValue)
	assert.Equal(t, 0.0, report.SpentAmount)
	assert.Equal(t, 0.0, report.ProfitLoss)
	assert.Equal(t, 0.0, report.ProfitLossPercentage)
}
