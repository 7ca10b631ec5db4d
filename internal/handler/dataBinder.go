package handler

import (
	"fmt"

	"github.com/ritrovo/ritrovo/internal/errdef"

	"github.com/gin-gonic/gin"
)

// DataBinder binds a submitted form onto req, classifying failures so the
// error middleware answers 415 for wrong content types and 400 for malformed
// fields (including the fixed "HH:MM" and "YYYY-MM-DD" literals).
func DataBinder(c *gin.Context, req interface{}) error {
	contentType := c.ContentType()
	if contentType != "application/x-www-form-urlencoded" && contentType != "multipart/form-data" {
		reason := fmt.Sprintf("%s only accepts form submissions", c.FullPath())
		return errdef.NewUnsupportedMediaType("%s", reason)
	}

	if err := c.ShouldBind(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}
