package middleware

import (
	"net/http"

	"github.com/ritrovo/ritrovo/pkg/model"
	"github.com/ritrovo/ritrovo/pkg/session"

	"github.com/gin-gonic/gin"
)

func NewSessionMiddleware(sessions sessionParser) SessionMiddleware {
	return SessionMiddleware{
		sessions: sessions,
	}
}

type sessionParser interface {
	Parse(tokenString string) (model.Identity, error)
}

type SessionMiddleware struct {
	sessions sessionParser
}

// RequireSession aborts with a redirect to the login page when the session
// cookie is missing or invalid. The source deliberately soft-fails here so a
// visitor with an expired cookie lands on a form instead of an error page.
func (m SessionMiddleware) RequireSession(c *gin.Context) {
	identity, ok := m.parse(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	m.attach(c, identity)
	c.Next()
}

// OptionalSession attaches the identity when a valid session cookie is present
// and continues either way. Pages use it to pre-fill forms for known callers.
func (m SessionMiddleware) OptionalSession(c *gin.Context) {
	if identity, ok := m.parse(c); ok {
		m.attach(c, identity)
	}
	c.Next()
}

func (m SessionMiddleware) parse(c *gin.Context) (model.Identity, bool) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil {
		return model.Identity{}, false
	}

	identity, err := m.sessions.Parse(cookie)
	if err != nil {
		return model.Identity{}, false
	}

	return identity, true
}

func (m SessionMiddleware) attach(c *gin.Context, identity model.Identity) {
	c.Set("identity", identity)
	// also on the request context so the slog handler can stamp records
	c.Request = c.Request.WithContext(model.NewContextWithIdentity(c.Request.Context(), identity))
}
