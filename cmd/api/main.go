package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"crm_cotizador/docs"
	"crm_cotizador/internal/adapter/cache"
	"crm_cotizador/internal/adapter/http/handlers"
	"crm_cotizador/internal/adapter/http/routes"
	"crm_cotizador/internal/adapter/persistence/repository"
	redisclient "crm_cotizador/internal/infrastructure/cache"
	"crm_cotizador/internal/infrastructure/config"
	"crm_cotizador/internal/infrastructure/database"
	"crm_cotizador/internal/infrastructure/logger"
	"crm_cotizador/internal/infrastructure/metrics"
	"crm_cotizador/internal/infrastructure/payments"
	"crm_cotizador/internal/usecase"
	"crm_cotizador/internal/usecase/interfaces"
)

// @title           CRM Cotizador API
// @version         1.0
// @description     Quote pricing service (modules, hardware, payments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("failed to connect to dynamodb: %w", err)
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable)
	priceSchemeRepo := repository.NewPriceSchemeDynamoRepository(ddb, cfg.DynamoDB.PriceSchemesTable)
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	// Redis is optional; without it the catalog is read from DynamoDB on every request.
	var catalogCache interfaces.IPriceCatalogCache
	if cfg.Redis.Enabled {
		rdb, err := redisclient.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis connection failed, continuing without catalog cache", zap.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			catalogCache = cache.NewPriceCatalogRedisCache(rdb, cfg.Redis.CatalogTTLDuration())
			log.Info("Catalog cache enabled",
				zap.String("addr", cfg.Redis.Addr),
				zap.Duration("ttl", cfg.Redis.CatalogTTLDuration()),
			)
		}
	}

	registry := metrics.NewRegistry()

	var gateway interfaces.IPaymentGateway
	if cfg.MercadoPago.Mock {
		log.Info("Payment gateway mock mode enabled")
	} else if mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log); err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	catalogUseCase := usecase.NewPriceCatalogUseCase(priceSchemeRepo, catalogCache, registry, log)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogUseCase, cfg.SellerDirectory(), registry, log)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, catalogUseCase, gateway, usecase.PaymentOptions{
		Mock:            cfg.MercadoPago.Mock,
		SandboxToken:    cfg.MercadoPago.SandboxToken(),
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}, log)

	if _, err := catalogUseCase.Catalog(ctx); err != nil {
		log.Warn("Price catalog not ready at startup, quotes will not be priced", zap.Error(err))
	}

	router := routes.NewRouter(routes.Handlers{
		Quotes:       handlers.NewQuoteHandler(quoteUseCase, log),
		Payments:     handlers.NewQuotePaymentHandler(paymentUseCase, cfg.MercadoPago.Mock, log),
		PriceSchemes: handlers.NewPriceSchemeHandler(catalogUseCase, log),
	}, registry, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}
		log.Info("Server stopped gracefully")
	}
	return nil
}
