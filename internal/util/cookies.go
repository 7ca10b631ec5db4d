package util

import (
	"net/http"

	"github.com/ritrovo/ritrovo/pkg/session"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie stores the signed session token. Lax is enough: every
// mutating route is a same-site form post followed by a 303 redirect.
func SetSessionCookie(c *gin.Context, token string, maxAge int, hostname string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", hostname, false, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, hostname string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", hostname, false, true)
}
