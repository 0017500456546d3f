package models

// User represents an account entity used for authentication and wallet
// ownership. It carries profile attributes only; the password hash lives in
// a separate credential collection and must never appear on this struct.
type User struct {
	// UserID is the store-generated unique identifier of the user.
	UserID string `json:"id"`

	// Email is the unique sign-in identifier, compared case-sensitively
	// as stored.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`
}
