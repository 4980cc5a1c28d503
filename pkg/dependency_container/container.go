package dependency_container

import (
	"context"
	"fmt"
	"time"

	appClassification "github.com/NeuralTrust/ContentGuard/pkg/app/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/config"
	domainClassification "github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/domain/telemetry"
	handlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/factory"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/jwt"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/metrics"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	infraTelemetry "github.com/NeuralTrust/ContentGuard/pkg/infra/telemetry"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/telemetry/kafka"
	infraWebsocket "github.com/NeuralTrust/ContentGuard/pkg/infra/websocket"
	"github.com/NeuralTrust/ContentGuard/pkg/server/middleware"
	"github.com/NeuralTrust/ContentGuard/pkg/version"
	"github.com/sirupsen/logrus"
)

const (
	metricsWorkers = 2
	pingTimeout    = 3 * time.Second
)

type Container struct {
	Cache                  cache.Client
	Classifier             domainClassification.Classifier
	Pipeline               appClassification.Pipeline
	Recorder               *prometheus.Recorder
	MetricsWorker          metrics.Worker
	JWTManager             jwt.Manager
	HandlerTransport       handlers.HandlerTransport
	WSHandlerTransport     wsHandlers.HandlerTransport
	PanicRecoverMiddleware middleware.Middleware
	RequestIDMiddleware    middleware.Middleware
	AccessLogMiddleware    middleware.Middleware
	MetricsMiddleware      middleware.Middleware
	AdminAuthMiddleware    middleware.Middleware
	WebSocketMiddleware    middleware.Middleware
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	cacheInstance := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, di.Logger)

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := cacheInstance.Ping(pingCtx); err != nil {
		if !cfg.Cache.FailOpen {
			_ = cacheInstance.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		di.Logger.WithError(err).Warn("redis is unreachable, classifications will not be cached until it recovers")
	}

	recorder := prometheus.NewRecorder(prometheus.Config{
		EnableRuntime: cfg.Metrics.Enabled,
	})

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Classifier.Timeout),
		httpx.WithUserAgent(fmt.Sprintf("%s/%s", version.AppName, version.Version)),
	)

	classifierLocator := factory.NewClassifierLocator(di.Logger, httpClient)
	classifier, err := classifierLocator.Get(context.Background(), cfg.Classifier)
	if err != nil {
		_ = cacheInstance.Close()
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}
	di.Logger.WithField("provider", classifier.Name()).Info("classifier initialized")

	// telemetry
	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	)
	exporters, err := exporterLocator.Build(exporterConfigs(cfg))
	if err != nil {
		_ = cacheInstance.Close()
		return nil, err
	}
	metricsWorker := metrics.NewWorker(di.Logger, exporters, metrics.DefaultQueueSize)
	metricsWorker.StartWorkers(metricsWorkers)

	pipeline := appClassification.NewPipeline(
		di.Logger,
		cacheInstance,
		classifier,
		recorder,
		metricsWorker,
		appClassification.Options{
			TTL:               cfg.Cache.TTL,
			FailOpen:          cfg.Cache.FailOpen,
			ClassifierTimeout: cfg.Classifier.Timeout,
			BatchMaxSize:      cfg.Batch.MaxSize,
			BatchConcurrency:  cfg.Batch.Concurrency,
		},
	)

	jwtManager := jwt.NewJwtManager(&cfg.Server)
	semaphore := infraWebsocket.NewSemaphore(cfg.WebSocket.MaxConnections)

	// WebSocket handler transport
	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		ClassifyHandler: wsHandlers.NewClassifyHandler(di.Logger, pipeline),
	}

	// Handler Transport
	handlerTransport := &handlers.HandlerTransportDTO{
		HealthHandler:          handlers.NewHealthHandler(),
		ReadyHandler:           handlers.NewReadyHandler(di.Logger, cacheInstance),
		ClassifyHandler:        handlers.NewClassifyHandler(di.Logger, pipeline),
		ClassifyBatchHandler:   handlers.NewClassifyBatchHandler(di.Logger, pipeline),
		GetVersionHandler:      handlers.NewGetVersionHandler(di.Logger),
		InvalidateCacheHandler: handlers.NewInvalidateCacheHandler(di.Logger, cacheInstance),
	}

	container := &Container{
		Cache:                  cacheInstance,
		Classifier:             classifier,
		Pipeline:               pipeline,
		Recorder:               recorder,
		MetricsWorker:          metricsWorker,
		JWTManager:             jwtManager,
		HandlerTransport:       handlerTransport,
		WSHandlerTransport:     wsHandlerTransport,
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(di.Logger),
		AccessLogMiddleware:    middleware.NewAccessLogMiddleware(di.Logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(di.Logger, recorder),
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
		WebSocketMiddleware:    middleware.NewWebsocketMiddleware(di.Logger, semaphore),
	}

	return container, nil
}

// Close releases the worker queue first so buffered events can still be
// exported, then the Redis connection pool.
func (c *Container) Close() error {
	c.MetricsWorker.Shutdown()
	return c.Cache.Close()
}

func exporterConfigs(cfg *config.Config) []telemetry.ExporterConfig {
	var configs []telemetry.ExporterConfig
	if cfg.Telemetry.Kafka.Enabled {
		configs = append(configs, telemetry.ExporterConfig{
			Name: kafka.ExporterName,
			Settings: map[string]interface{}{
				"host":  cfg.Telemetry.Kafka.Host,
				"port":  cfg.Telemetry.Kafka.Port,
				"topic": cfg.Telemetry.Kafka.Topic,
			},
		})
	}
	return configs
}
