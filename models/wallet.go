package models

import "time"

// Wallet is a named portfolio container owned by exactly one user.
// Derived valuation fields are never stored on this struct; see
// WalletReport for the computed view returned to callers.
type Wallet struct {
	// WalletID is the store-generated unique identifier of the wallet.
	WalletID string `json:"id"`

	// UserID is the owning user's identifier. All wallet operations are
	// scoped by this key: an id match without a user match is "not found".
	UserID string `json:"userId"`

	// Name is the user-chosen wallet name.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WalletPatch carries the mutable wallet fields for partial updates.
// Nil fields are left untouched by the store.
type WalletPatch struct {
	Name *string `json:"name"`
}
