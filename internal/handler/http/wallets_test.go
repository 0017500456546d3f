// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-tracker/internal/service"
	"github.com/MKhiriev/go-wallet-tracker/internal/store"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

func TestListWallets(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			listWalletsFn: func(_ context.Context, userID string) ([]models.WalletReport, error) {
				assert.Equal(t, "user-1", userID)
				return []models.WalletReport{
					{Wallet: models.Wallet{WalletID: "w1", Name: "Growth"}, TotalValue: 1500, AssetCount: 1},
				}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodGet, "/api/wallets", "", true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"Growth"`)
	assert.Contains(t, body, `"totalValue":1500`)
}

func TestListWallets_Unauthenticated(t *testing.T) {
	server := newTestServer(t, testServices{})

	resp, _ := doRequest(t, server, http.MethodGet, "/api/wallets", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateWallet(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			createWalletFn: func(_ context.Context, userID, name string) (models.WalletReport, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, "Retirement", name)
				return models.WalletReport{Wallet: models.Wallet{WalletID: "w1", UserID: userID, Name: name}}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodPost, "/api/wallets", `{"name":"Retirement"}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"Retirement"`)
}

func TestCreateWallet_EmptyName(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			createWalletFn: func(_ context.Context, _, _ string) (models.WalletReport, error) {
				return models.WalletReport{}, service.ErrInvalidDataProvided
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodPost, "/api/wallets", `{"name":""}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetWallet_NotFound(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			getWalletFn: func(_ context.Context, _, _ string) (models.WalletReport, error) {
				return models.WalletReport{}, store.ErrWalletNotFound
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodGet, "/api/wallets/missing", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateWallet(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			updateWalletFn: func(_ context.Context, walletID, userID string, patch models.WalletPatch) (models.WalletReport, error) {
				assert.Equal(t, "w1", walletID)
				require.NotNil(t, patch.Name)
				return models.WalletReport{Wallet: models.Wallet{WalletID: walletID, Name: *patch.Name}}, nil
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodPut, "/api/wallets/w1", `{"name":"Renamed"}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"Renamed"`)
}

func TestDeleteWallet(t *testing.T) {
	deleted := false
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			deleteWalletFn: func(_ context.Context, walletID, userID string) error {
				assert.Equal(t, "w1", walletID)
				assert.Equal(t, "user-1", userID)
				deleted = true
				return nil
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodDelete, "/api/wallets/w1", "", true)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, deleted)
}

func TestDeleteWallet_CrossTenantIsNotFound(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			deleteWalletFn: func(_ context.Context, _, _ string) error {
				return store.ErrWalletNotFound
			},
		},
	})

	resp, _ := doRequest(t, server, http.MethodDelete, "/api/wallets/w1", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStorageFaultIsInternalError(t *testing.T) {
	server := newTestServer(t, testServices{
		wallets: &mockWalletService{
			listWalletsFn: func(_ context.Context, _ string) ([]models.WalletReport, error) {
				return nil, store.ErrExecutingQuery
			},
		},
	})

	resp, body := doRequest(t, server, http.MethodGet, "/api/wallets", "", true)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// no internal detail leaks to the client
	assert.NotContains(t, body, "query")
}
