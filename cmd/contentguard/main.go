package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/ContentGuard/pkg/infra/logger"
	"github.com/NeuralTrust/ContentGuard/pkg/server"
	"github.com/NeuralTrust/ContentGuard/pkg/server/middleware"
	"github.com/NeuralTrust/ContentGuard/pkg/server/router"
	"github.com/NeuralTrust/ContentGuard/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	serverTypeAPI   = "api"
	serverTypeAdmin = "admin"
)

// @title ContentGuard API
// @description Content-safety text classification with a Redis result cache.
// @BasePath /
func main() {
	serverType := getServerType()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, closeLogger, err := infraLogger.NewLogger(serverType)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	cfg, err := config.Load("config")
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	logger.WithFields(logrus.Fields{
		"version":     version.Version,
		"server_type": serverType,
	}).Info("starting " + version.AppName)

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize dependencies")
	}

	srv := initializeServer(serverType, cfg, logger, container)

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Error("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	if err := container.Close(); err != nil {
		logger.WithError(err).Error("error releasing dependencies")
	}
	fmt.Println("server gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return serverTypeAPI
}

func initializeServer(
	serverType string,
	cfg *config.Config,
	logger *logrus.Logger,
	container *dependency_container.Container,
) server.Server {
	base := middleware.NewTransport(
		container.PanicRecoverMiddleware,
		container.RequestIDMiddleware,
	)

	switch serverType {
	case serverTypeAdmin:
		adminRouter := router.NewAdminRouter(
			base.With(container.AccessLogMiddleware),
			container.AdminAuthMiddleware,
			container.HandlerTransport,
		)
		return server.NewAdminServer(server.AdminServerDI{
			Config:  cfg,
			Logger:  logger,
			Routers: []router.ServerRouter{adminRouter},
		})
	default:
		apiRouter := router.NewAPIRouter(
			base.With(container.MetricsMiddleware, container.AccessLogMiddleware),
			container.HandlerTransport,
			container.WSHandlerTransport,
			container.WebSocketMiddleware,
		)
		return server.NewAPIServer(server.APIServerDI{
			Config:   cfg,
			Logger:   logger,
			Recorder: container.Recorder,
			Routers:  []router.ServerRouter{apiRouter},
		})
	}
}
