package server

import (
	"log/slog"

	"github.com/ritrovo/ritrovo/internal/middleware"
	"github.com/ritrovo/ritrovo/pkg/availability"
	"github.com/ritrovo/ritrovo/pkg/group"
	"github.com/ritrovo/ritrovo/pkg/health"
	"github.com/ritrovo/ritrovo/pkg/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func GetEngine(logger *slog.Logger, sessionMiddleware middleware.SessionMiddleware, groupHandler group.Handler, userHandler user.Handler, availabilityHandler availability.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("ritrovo"))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	r.LoadHTMLGlob("./templates/*.html")

	redoc(r)

	r.GET("/health", health.Health)

	group.Routes(r, sessionMiddleware, groupHandler)
	user.Routes(r, userHandler)
	availability.Routes(r, sessionMiddleware, availabilityHandler)

	return r
}

func redoc(r *gin.Engine) {
	r.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		SpecURL: "./swagger.yaml",
	}
	r.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
