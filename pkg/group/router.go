package group

import (
	"github.com/gin-gonic/gin"
)

type SessionMiddleware interface {
	OptionalSession(c *gin.Context)
}

func Routes(r *gin.Engine, sessionMiddleware SessionMiddleware, handler Handler) {
	r.GET("/", handler.List)
	r.GET("/crea-gruppo", handler.CreateForm)
	r.POST("/crea-gruppo", handler.Create)
	r.GET("/:group", sessionMiddleware.OptionalSession, handler.Page)
}
