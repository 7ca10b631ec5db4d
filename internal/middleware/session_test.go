package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ritrovo/ritrovo/pkg/model"
	"github.com/ritrovo/ritrovo/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware_RequireSession_RedirectsWithoutCookie(t *testing.T) {
	m := NewSessionMiddleware(stubParser{err: errors.New("unused")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/colleghi/submit", nil)

	m.RequireSession(c)
	c.Writer.WriteHeaderNow()

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionMiddleware_RequireSession_RedirectsOnInvalidCookie(t *testing.T) {
	m := NewSessionMiddleware(stubParser{err: errors.New("session not valid")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/colleghi/submit", nil)
	c.Request.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})

	m.RequireSession(c)
	c.Writer.WriteHeaderNow()

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionMiddleware_RequireSession_AttachesIdentity(t *testing.T) {
	identity := model.Identity{UserID: 9, Nickname: "marco", GroupSlug: "colleghi"}
	m := NewSessionMiddleware(stubParser{identity: identity})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/colleghi/submit", nil)
	c.Request.AddCookie(&http.Cookie{Name: session.CookieName, Value: "signed-token"})

	m.RequireSession(c)

	assert.False(t, c.IsAborted())

	value, ok := c.Get("identity")
	require.True(t, ok)
	assert.Equal(t, identity, value)

	fromContext, ok := model.GetIdentityFromContext(c.Request.Context())
	require.True(t, ok)
	assert.Equal(t, identity, fromContext)
}

func TestSessionMiddleware_OptionalSession_ContinuesWithoutCookie(t *testing.T) {
	m := NewSessionMiddleware(stubParser{err: errors.New("unused")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/colleghi", nil)

	m.OptionalSession(c)

	assert.False(t, c.IsAborted())
	_, ok := c.Get("identity")
	assert.False(t, ok)
}

type stubParser struct {
	identity model.Identity
	err      error
}

func (s stubParser) Parse(string) (model.Identity, error) {
	return s.identity, s.err
}
