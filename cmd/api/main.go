package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"wineapi/docs"
	"wineapi/internal/classifier"
	"wineapi/internal/config"
	"wineapi/internal/database"
	"wineapi/internal/database/migration"
	handlers "wineapi/internal/http/handler"
	"wineapi/internal/http/middleware"
	"wineapi/internal/logger"
	"wineapi/internal/otel"
	"wineapi/internal/repository/sqlstore"
	"wineapi/internal/service"
	"wineapi/internal/storage"
)

// @title       Wine Quality Classifier
// @version     1.0.0
// @description Classifies wine samples as GOOD or BAD and stores them with an anonymized identity document.
// @BasePath    /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("tracing_init_failed", "error", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("database_connect_failed", "error", err, "driver", cfg.Database.Driver)
	}
	defer db.Close()

	if err := migration.EnsureSchema(ctx, db, log); err != nil {
		log.Fatal("database_schema_failed", "error", err)
	}

	var objStore storage.Storage
	if cfg.Model.BucketKey != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal("object_storage_init_failed", "error", err)
		}
	}

	// The classifier is mandatory; a missing or invalid artifact stops boot.
	predictor, src, err := classifier.Load(ctx, cfg.Model, objStore)
	if err != nil {
		log.Fatal("model_load_failed", "error", err, "path", cfg.Model.Path, "bucket_key", cfg.Model.BucketKey)
	}
	log.Info("model_loaded",
		"origin", src.Origin,
		"kind", src.Kind,
		"version", src.Version,
		"size_bytes", src.Size,
		"etag", src.ETag,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	wineClassifier, err := classifier.NewInstrumented(classifier.New(predictor), registry)
	if err != nil {
		log.Fatal("metrics_register_failed", "error", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatal("metrics_register_failed", "error", err)
	}

	wineRepo := sqlstore.NewWineSQL(db)
	wineSvc := service.NewWineService(wineRepo, wineClassifier)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: cfg.Env != "development",
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(cors.New())
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", middleware.MetricsHandler(registry))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, db.DB, wineSvc, log)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		log.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server_shutdown_failed", "error", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing_shutdown_failed", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", "addr", addr, "env", cfg.Env, "db_driver", db.Dialect, "testing", cfg.Testing)

	if err := app.Listen(addr); err != nil {
		log.Fatal("server_start_failed", "error", err)
	}
	<-stopped
	log.Info("server_stopped")
}
