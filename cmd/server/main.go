package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mylibrary-user/internal/config"
	"mylibrary-user/internal/database"
	apphttp "mylibrary-user/internal/http"
	"mylibrary-user/internal/logging"
	"mylibrary-user/internal/service"
)

// @title MyLibrary User Service API
// @version 1.0
// @description REST API to create, fetch and page library users.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, db, err := database.OpenUsers(ctx, cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()
	logger.Infof("using %s user store", cfg.Database.Driver)

	userService := service.NewUserService(userRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	handler := apphttp.NewHandler(userService, userRepo, logger, apphttp.Options{
		DefaultPageSize: cfg.Pagination.DefaultSize,
		MaxPageSize:     cfg.Pagination.MaxSize,
		CORSOrigins:     cfg.Server.CORSOrigins,
		Swagger:         cfg.Server.Swagger,
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
