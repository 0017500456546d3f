// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-tracker/internal/store"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

func TestListAssets(t *testing.T) {
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			listAssetsFn: func(_ context.Context, walletID, userID string) ([]models.AssetReport, error) {
				assert.Equal(t, "w1", walletID)
				assert.Equal(t, "user-1", userID)
				return []models.AssetReport{
					{Asset: models.Asset{AssetID: "a1", Symbol: "AAPL"}, TotalValue: 1500, ProfitLoss: 500, ProfitLossPercentage: 50},
				}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodGet, "/api/wallets/w1/assets", "", true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"AAPL"`)
	assert.Contains(t, body, `"profitLossPercentage":50`)
}

func TestListAssets_ForeignWalletIsNotFound(t *testing.T) {
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			listAssetsFn: func(_ context.Context, _, _ string) ([]models.AssetReport, error) {
				return nil, store.ErrWalletNotFound
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodGet, "/api/wallets/w1/assets", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAsset(t *testing.T) {
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			createAssetFn: func(_ context.Context, userID string, asset models.Asset) (models.AssetReport, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, "w1", asset.WalletID)
				assert.Equal(t, models.AssetTypeStock, asset.Type)
				assert.Equal(t, 10.0, asset.Quantity)
				return models.AssetReport{Asset: asset, TotalValue: 1500}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodPost, "/api/wallets/w1/assets",
		`{"type":"stock","symbol":"AAPL","name":"Apple","quantity":10,"purchasePrice":100,"currentPrice":150}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"totalValue":1500`)
}

func TestCreateAsset_ZeroQuantityIsPresent(t *testing.T) {
	called := false
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			createAssetFn: func(_ context.Context, _ string, asset models.Asset) (models.AssetReport, error) {
				called = true
				assert.Zero(t, asset.Quantity)
				return models.AssetReport{Asset: asset}, nil
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodPost, "/api/wallets/w1/assets",
		`{"type":"cash","symbol":"USD","name":"Cash","quantity":0,"purchasePrice":0,"currentPrice":0}`, true)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, called)
}

func TestCreateAsset_MissingFieldIsRejectedBeforeService(t *testing.T) {
	called := false
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			createAssetFn: func(_ context.Context, _ string, asset models.Asset) (models.AssetReport, error) {
				called = true
				return models.AssetReport{Asset: asset}, nil
			},
		},
	})

	// quantity absent entirely, unlike the zero-valued case above
	resp, _ := doRequest(t, server, http.MethodPost, "/api/wallets/w1/assets",
		`{"type":"stock","symbol":"AAPL","name":"Apple","purchasePrice":100,"currentPrice":150}`, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called)
}

func TestGetAsset_ScopeMismatchIsNotFound(t *testing.T) {
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			getAssetFn: func(_ context.Context, _, _, _ string) (models.AssetReport, error) {
				return models.AssetReport{}, store.ErrAssetNotFound
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodGet, "/api/wallets/w1/assets/a1", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAsset_PassesPatchThrough(t *testing.T) {
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			updateAssetFn: func(_ context.Context, assetID, walletID, userID string, patch models.AssetPatch) (models.AssetReport, error) {
				assert.Equal(t, "a1", assetID)
				assert.Equal(t, "w1", walletID)
				require.NotNil(t, patch.CurrentPrice)
				assert.Equal(t, 200.0, *patch.CurrentPrice)
				assert.Nil(t, patch.Quantity)
				return models.AssetReport{Asset: models.Asset{AssetID: assetID}, TotalValue: 2000}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodPut, "/api/wallets/w1/assets/a1",
		`{"currentPrice":200}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"totalValue":2000`)
}

func TestDeleteAsset(t *testing.T) {
	deleted := false
	server := newTestServer(t, testServices{
		assets: &mockAssetService{
			deleteAssetFn: func(_ context.Context, assetID, walletID, userID string) error {
				assert.Equal(t, "a1", assetID)
				assert.Equal(t, "w1", walletID)
				deleted = true
				return nil
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodDelete, "/api/wallets/w1/assets/a1", "", true)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, deleted)
}
