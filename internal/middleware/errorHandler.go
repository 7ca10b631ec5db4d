package middleware

import (
	"net/http"

	"github.com/ritrovo/ritrovo/internal/errdef"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto HTTP statuses
// after the handler chain has run. Handlers only classify errors via errdef;
// this is the single place deciding what the caller sees.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		// a handler already answered; keep its status and only append the error
		if c.Writer.Status() != http.StatusOK {
			_, _ = c.Writer.WriteString(err.Error())
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			c.String(http.StatusBadRequest, err.Error())
		} else if errdef.IsUnauthorized(err) {
			c.String(http.StatusUnauthorized, err.Error())
		} else if errdef.IsNotFound(err) {
			c.String(http.StatusNotFound, err.Error())
		} else if errdef.IsConflict(err) {
			c.String(http.StatusConflict, err.Error())
		} else if errdef.IsUnsupportedMediaType(err) {
			c.String(http.StatusUnsupportedMediaType, err.Error())
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			c.String(http.StatusInternalServerError, "something went wrong. We'll look into it if you send us the id %q :)", id)
		}
	}
}
