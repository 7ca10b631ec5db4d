package availability

import (
	"github.com/gin-gonic/gin"
)

type SessionMiddleware interface {
	RequireSession(c *gin.Context)
	OptionalSession(c *gin.Context)
}

func Routes(r *gin.Engine, sessionMiddleware SessionMiddleware, handler Handler) {
	r.POST("/:group/submit", sessionMiddleware.RequireSession, handler.Submit)
	r.POST("/:group/delete", sessionMiddleware.OptionalSession, handler.Delete)
}
