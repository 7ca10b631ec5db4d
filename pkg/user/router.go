package user

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, handler Handler) {
	r.GET("/register", handler.RegisterForm)
	r.POST("/register", handler.Register)
	r.GET("/login", handler.LoginForm)
	r.POST("/login", handler.Login)
	r.GET("/logout", handler.Logout)
}
