// Package classification Ritrovo.
//
// Shared boards for deciding when and where a group meets for a drink
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//    Version: 0.1.0
//    License: TODO
//    Contact: https://github.com/ritrovo/ritrovo
//
//    Consumes:
//      - application/x-www-form-urlencoded
//
//    Produces:
//      - text/html
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ritrovo/ritrovo/internal/handler"
	"github.com/ritrovo/ritrovo/internal/log"
	"github.com/ritrovo/ritrovo/internal/middleware"
	"github.com/ritrovo/ritrovo/internal/server"
	"github.com/ritrovo/ritrovo/internal/tracing"
	"github.com/ritrovo/ritrovo/pkg/availability"
	"github.com/ritrovo/ritrovo/pkg/bar"
	"github.com/ritrovo/ritrovo/pkg/config"
	"github.com/ritrovo/ritrovo/pkg/group"
	"github.com/ritrovo/ritrovo/pkg/session"
	"github.com/ritrovo/ritrovo/pkg/storage"
	"github.com/ritrovo/ritrovo/pkg/user"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	cfg := config.ProvideConfig()

	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JaegerURL != "" {
		shutdownTracing, err := tracing.ProvideTracerProvider(cfg.JaegerURL)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Error("Failed to shut down tracing", "error", err)
			}
		}()
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return fmt.Errorf("failed to setup DB: %v", err)
	}

	groupRepository := group.NewRepository(db)
	groupService := group.NewService(groupRepository)

	barRepository := bar.NewRepository(db)
	barService := bar.NewService(barRepository)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository, groupService)

	availabilityRepository := availability.NewRepository(db)
	availabilityService := availability.NewService(logger, availabilityRepository, groupService, barService, userService)

	sessionService := session.NewService(cfg.Session.SecretKey, cfg.Session.ExpirationSeconds)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService)

	groupHandler := group.NewHandler(groupService, barService, availabilityService)
	userHandler := user.NewHandler(cfg.Hostname, userService, sessionService)
	availabilityHandler := availability.NewHandler(availabilityService)

	r := server.GetEngine(logger, sessionMiddleware, groupHandler, userHandler, availabilityHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	var g errgroup.Group
	g.Go(func() error {
		logger.Info("Listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
