package handler

import (
	"errors"

	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/gin-gonic/gin"
)

// GetIdentityFromContext returns the session identity set by the session
// middleware. Handlers behind RequireSession can rely on it being present.
func GetIdentityFromContext(c *gin.Context) (model.Identity, error) {
	identityData, exists := c.Get("identity")
	if !exists {
		return model.Identity{}, errors.New("identity not found on context")
	}

	identity, ok := identityData.(model.Identity)
	if !ok {
		return model.Identity{}, errors.New("failed to parse identity data")
	}
	return identity, nil
}
