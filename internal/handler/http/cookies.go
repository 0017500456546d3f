package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-tracker/models"
)

// authCookieName is the session cookie carrying the signed JWT.
const authCookieName = "auth_token"

// setAuthCookie attaches the session cookie to the response. The cookie
// lives exactly as long as the token it carries; the Secure attribute is set
// only in production so local development over plain HTTP keeps working.
func (h *Handler) setAuthCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cfg.TokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie expires the session cookie immediately.
func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
