package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"crm_cotizador/internal/domain/entities"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Logging     LoggingConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	MercadoPago MercadoPagoConfig
	Sellers     []SellerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// DynamoDBConfig points at AWS or at a local DynamoDB when Endpoint is set.
type DynamoDBConfig struct {
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	QuotesTable       string
	PriceSchemesTable string
	PaymentsTable     string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	// CatalogTTL is how long the price scheme stays cached (seconds)
	CatalogTTL int
}

type MercadoPagoConfig struct {
	AccessToken     string
	PublicKey       string
	TestPayerEmail  string
	TestPayerUserID string `mapstructure:"userID"`
	Mock            bool
}

// SellerConfig is one entry of the sales team table.
type SellerConfig struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// CatalogTTLDuration returns the catalog cache TTL as duration
func (r *RedisConfig) CatalogTTLDuration() time.Duration {
	return time.Duration(r.CatalogTTL) * time.Second
}

// SandboxToken reports whether the access token belongs to a test account.
func (m *MercadoPagoConfig) SandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(m.AccessToken), "TEST-")
}

// SellerDirectory converts the configured sales team into domain sellers.
func (c *Config) SellerDirectory() []entities.Seller {
	out := make([]entities.Seller, 0, len(c.Sellers))
	for _, s := range c.Sellers {
		if strings.TrimSpace(s.ID) == "" {
			continue
		}
		out = append(out, entities.Seller{ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role})
	}
	return out
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app.port %d", c.App.Port)
	}
	if c.DynamoDB.QuotesTable == "" || c.DynamoDB.PriceSchemesTable == "" || c.DynamoDB.PaymentsTable == "" {
		return fmt.Errorf("dynamodb table names are required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}
	return nil
}

// bindEnv keeps the flat variable names used by the deployment manifests.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"app.port":                   {"PORT", "APP_PORT"},
		"app.environment":            {"APP_ENV", "APP_ENVIRONMENT"},
		"logging.level":              {"LOG_LEVEL", "LOGGING_LEVEL"},
		"logging.format":             {"LOG_FORMAT", "LOGGING_FORMAT"},
		"dynamodb.region":            {"AWS_REGION", "DYNAMODB_REGION"},
		"dynamodb.endpoint":          {"DYNAMODB_ENDPOINT"},
		"dynamodb.accessKeyID":       {"AWS_ACCESS_KEY_ID"},
		"dynamodb.secretAccessKey":   {"AWS_SECRET_ACCESS_KEY"},
		"dynamodb.quotesTable":       {"QUOTES_TABLE"},
		"dynamodb.priceSchemesTable": {"PRICE_SCHEMES_TABLE"},
		"dynamodb.paymentsTable":     {"QUOTE_PAYMENTS_TABLE"},
		"redis.enabled":              {"REDIS_ENABLED"},
		"redis.addr":                 {"REDIS_ADDR"},
		"redis.password":             {"REDIS_PASSWORD"},
		"redis.db":                   {"REDIS_DB"},
		"redis.catalogTTL":           {"REDIS_CATALOG_TTL"},
		"mercadopago.accessToken":    {"MERCADOPAGO_ACCESS_TOKEN"},
		"mercadopago.publicKey":      {"MERCADOPAGO_PUBLIC_KEY"},
		"mercadopago.testPayerEmail": {"MERCADOPAGO_TEST_PAYER_EMAIL"},
		"mercadopago.userID":         {"MERCADOPAGO_TEST_PAYER_USER_ID"},
		"mercadopago.mock":           {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "crm-cotizador")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// DynamoDB defaults (local-friendly)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.accessKeyID", "local")
	v.SetDefault("dynamodb.secretAccessKey", "local")
	v.SetDefault("dynamodb.quotesTable", "quotes")
	v.SetDefault("dynamodb.priceSchemesTable", "price_schemes")
	v.SetDefault("dynamodb.paymentsTable", "quote_payments")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.catalogTTL", 300) // 5 minutes

	// Mercado Pago defaults
	v.SetDefault("mercadopago.mock", false)
}
