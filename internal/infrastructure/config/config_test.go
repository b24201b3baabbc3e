package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, "development", cfg.App.Environment)
	require.Equal(t, "quotes", cfg.DynamoDB.QuotesTable)
	require.Equal(t, "price_schemes", cfg.DynamoDB.PriceSchemesTable)
	require.Equal(t, "quote_payments", cfg.DynamoDB.PaymentsTable)
	require.False(t, cfg.Redis.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Redis.CatalogTTLDuration())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("QUOTES_TABLE", "crm_quotes")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_CATALOG_TTL", "60")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "42")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.App.Port)
	require.Equal(t, "us-west-2", cfg.DynamoDB.Region)
	require.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	require.Equal(t, "crm_quotes", cfg.DynamoDB.QuotesTable)
	require.True(t, cfg.Redis.Enabled)
	require.Equal(t, "redis:6379", cfg.Redis.Addr)
	require.Equal(t, time.Minute, cfg.Redis.CatalogTTLDuration())
	require.True(t, cfg.MercadoPago.Mock)
	require.True(t, cfg.MercadoPago.SandboxToken())
	require.Equal(t, "42", cfg.MercadoPago.TestPayerUserID)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}

func TestSellerDirectory(t *testing.T) {
	cfg := &Config{Sellers: []SellerConfig{
		{ID: "s-1", Name: "Ana López", Email: "ana@example.com", Role: "ventas"},
		{ID: " ", Name: "sin id"},
	}}

	sellers := cfg.SellerDirectory()
	require.Len(t, sellers, 1)
	require.Equal(t, "Ana López", sellers[0].Name)
	require.Equal(t, "ventas", sellers[0].Role)
}
