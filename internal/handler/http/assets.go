package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/internal/utils"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// createAssetRequest mirrors models.Asset with pointer fields so that absent
// and zero-valued numerics can be told apart: a holding of quantity 0 is
// valid, a request that never mentions quantity is not.
type createAssetRequest struct {
	Type          *models.AssetType `json:"type"`
	Symbol        *string           `json:"symbol"`
	Name          *string           `json:"name"`
	Quantity      *float64          `json:"quantity"`
	PurchasePrice *float64          `json:"purchasePrice"`
	CurrentPrice  *float64          `json:"currentPrice"`
}

func (req createAssetRequest) complete() bool {
	return req.Type != nil && req.Symbol != nil && req.Name != nil &&
		req.Quantity != nil && req.PurchasePrice != nil && req.CurrentPrice != nil
}

func (req createAssetRequest) toAsset(walletID string) models.Asset {
	return models.Asset{
		WalletID:      walletID,
		Type:          *req.Type,
		Symbol:        *req.Symbol,
		Name:          *req.Name,
		Quantity:      *req.Quantity,
		PurchasePrice: *req.PurchasePrice,
		CurrentPrice:  *req.CurrentPrice,
	}
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	reports, err := h.services.AssetService.ListAssets(ctx, walletID, userID)
	if err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("listing assets failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !req.complete() {
		log.Error().Msg("asset request is missing required fields")
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	report, err := h.services.AssetService.CreateAsset(ctx, userID, req.toAsset(walletID))
	if err != nil {
		log.Err(err).Str("wallet_id", walletID).Msg("asset creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	assetID := chi.URLParam(r, "assetID")
	report, err := h.services.AssetService.GetAsset(ctx, assetID, walletID, userID)
	if err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var patch models.AssetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	assetID := chi.URLParam(r, "assetID")
	report, err := h.services.AssetService.UpdateAsset(ctx, assetID, walletID, userID, patch)
	if err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	assetID := chi.URLParam(r, "assetID")
	if err := h.services.AssetService.DeleteAsset(ctx, assetID, walletID, userID); err != nil {
		log.Err(err).Str("asset_id", assetID).Msg("asset deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
