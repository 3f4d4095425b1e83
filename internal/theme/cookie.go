package theme

import "net/http"

// CookieName mirrors the mode storage key so server-rendered pages can
// pick the correct mode before any client code runs.
const CookieName = "theme"

// cookieMaxAge is one year in seconds.
const cookieMaxAge = 31536000

// ModeCookie builds the mirrored mode cookie written on every change
// and refreshed on every request.
func ModeCookie(m Mode) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(m),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}

// ModeFromRequest reads the mode cookie. The second return value is
// false when the cookie is absent or carries an unknown value.
func ModeFromRequest(r *http.Request) (Mode, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c == nil {
		return DefaultMode, false
	}
	return ParseMode(c.Value)
}
