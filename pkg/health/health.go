package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers 200 as long as the process serves traffic.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
