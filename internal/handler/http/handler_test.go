// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-tracker/internal/config"
	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/service"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// ─────────────────────────────────────────────
// Mocks: service.AuthService, WalletService, AssetService
// ─────────────────────────────────────────────

type mockAuthService struct {
	signUpFn      func(ctx context.Context, name, email, password string) (models.User, error)
	signInFn      func(ctx context.Context, email, password string) (models.User, error)
	currentUserFn func(ctx context.Context, userID string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, name, email, password)
	}
	return models.User{UserID: "user-1", Email: email, Name: name}, nil
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	return models.User{UserID: "user-1", Email: email}, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return models.User{UserID: userID, Email: "user@x.com", Name: "Test"}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID, Email: user.Email}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "signed-token" {
		return models.Token{SignedString: tokenString, UserID: "user-1"}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockWalletService struct {
	listWalletsFn  func(ctx context.Context, userID string) ([]models.WalletReport, error)
	getWalletFn    func(ctx context.Context, walletID, userID string) (models.WalletReport, error)
	createWalletFn func(ctx context.Context, userID, name string) (models.WalletReport, error)
	updateWalletFn func(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.WalletReport, error)
	deleteWalletFn func(ctx context.Context, walletID, userID string) error
}

func (m *mockWalletService) ListWallets(ctx context.Context, userID string) ([]models.WalletReport, error) {
	if m.listWalletsFn != nil {
		return m.listWalletsFn(ctx, userID)
	}
	return []models.WalletReport{}, nil
}

func (m *mockWalletService) GetWallet(ctx context.Context, walletID, userID string) (models.WalletReport, error) {
	if m.getWalletFn != nil {
		return m.getWalletFn(ctx, walletID, userID)
	}
	return models.WalletReport{}, nil
}

func (m *mockWalletService) CreateWallet(ctx context.Context, userID, name string) (models.WalletReport, error) {
	if m.createWalletFn != nil {
		return m.createWalletFn(ctx, userID, name)
	}
	return models.WalletReport{}, nil
}

func (m *mockWalletService) UpdateWallet(ctx context.Context, walletID, userID string, patch models.WalletPatch) (models.WalletReport, error) {
	if m.updateWalletFn != nil {
		return m.updateWalletFn(ctx, walletID, userID, patch)
	}
	return models.WalletReport{}, nil
}

func (m *mockWalletService) DeleteWallet(ctx context.Context, walletID, userID string) error {
	if m.deleteWalletFn != nil {
		return m.deleteWalletFn(ctx, walletID, userID)
	}
	return nil
}

type mockAssetService struct {
	listAssetsFn  func(ctx context.Context, walletID, userID string) ([]models.AssetReport, error)
	getAssetFn    func(ctx context.Context, assetID, walletID, userID string) (models.AssetReport, error)
	createAssetFn func(ctx context.Context, userID string, asset models.Asset) (models.AssetReport, error)
	updateAssetFn func(ctx context.Context, assetID, walletID, userID string, patch models.AssetPatch) (models.AssetReport, error)
	deleteAssetFn func(ctx context.Context, assetID, walletID, userID string) error
}

func (m *mockAssetService) ListAssets(ctx context.Context, walletID, userID string) ([]models.AssetReport, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(ctx, walletID, userID)
	}
	return []models.AssetReport{}, nil
}

func (m *mockAssetService) GetAsset(ctx context.Context, assetID, walletID, userID string) (models.AssetReport, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(ctx, assetID, walletID, userID)
	}
	return models.AssetReport{}, nil
}

func (m *mockAssetService) CreateAsset(ctx context.Context, userID string, asset models.Asset) (models.AssetReport, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(ctx, userID, asset)
	}
	return models.AssetReport{Asset: asset}, nil
}

func (m *mockAssetService) UpdateAsset(ctx context.Context, assetID, walletID, userID string, patch models.AssetPatch) (models.AssetReport, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(ctx, assetID, walletID, userID, patch)
	}
	return models.AssetReport{}, nil
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, assetID, walletID, userID string) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(ctx, assetID, walletID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth    *mockAuthService
	wallets *mockWalletService
	assets  *mockAssetService
}

func newTestServer(t *testing.T, s testServices) *httptest.Server {
	t.Helper()

	if s.auth == nil {
		s.auth = &mockAuthService{}
	}
	if s.wallets == nil {
		s.wallets = &mockWalletService{}
	}
	if s.assets == nil {
		s.assets = &mockAssetService{}
	}

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-wallet-tracker",
		TokenDuration: 168 * time.Hour,
	}
	handler := NewHandler(&service.Services{
		AuthService:   s.auth,
		WalletService: s.wallets,
		AssetService:  s.assets,
	}, cfg, logger.Nop())

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)
	return server
}

// doRequest performs req against the test server and returns the response
// with its fully-read body.
func doRequest(t *testing.T, server *httptest.Server, method, path, body string, authenticated bool) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if authenticated {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "signed-token"})
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set on response", name)
	return nil
}
