package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"crm_cotizador/internal/adapter/persistence/repository"
	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/infrastructure/config"
	"crm_cotizador/internal/infrastructure/database"
	"crm_cotizador/internal/infrastructure/logger"
)

// seed loads a price scheme JSON file into the price schemes table.
func main() {
	file := flag.String("file", "config/price_scheme.example.json", "price scheme JSON file")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string) error {
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

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	var scheme entities.PriceScheme
	if err := json.Unmarshal(raw, &scheme); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	if err := pricing.NewCatalogFromScheme(scheme).Validate(); err != nil {
		return fmt.Errorf("invalid price scheme: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("failed to connect to dynamodb: %w", err)
	}
	repo := repository.NewPriceSchemeDynamoRepository(ddb, cfg.DynamoDB.PriceSchemesTable)
	if err := repo.Save(ctx, scheme); err != nil {
		return fmt.Errorf("failed to save price scheme: %w", err)
	}

	log.Info("Price scheme seeded",
		zap.String("table", cfg.DynamoDB.PriceSchemesTable),
		zap.Int("entries", len(scheme.Entries)),
	)
	return nil
}
