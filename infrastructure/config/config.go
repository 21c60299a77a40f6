package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Translator providers
const (
	TranslatorAWS    = "aws"
	TranslatorOpenAI = "openai"
)

// Translation stores
const (
	StoreDynamoDB = "dynamodb"
	StoreRedis    = "redis"
)

// Metrics backends
const (
	MetricsCloudWatch = "cloudwatch"
	MetricsPrometheus = "prometheus"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// AWS configuration
	AWSRegion        string `yaml:"aws_region"`
	TableName        string `yaml:"table_name"`
	LangTableName    string `yaml:"lang_table_name"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	EventBusName     string `yaml:"event_bus_name"`

	// Translation
	SourceLanguage     string `yaml:"source_language"`
	TranslatorProvider string `yaml:"translator_provider"`
	OpenAIAPIKey       string `yaml:"openai_api_key"`
	OpenAIModel        string `yaml:"openai_model"`
	OpenAIBaseURL      string `yaml:"openai_base_url"`
	TranslationStore   string `yaml:"translation_store"`
	RedisURL           string `yaml:"redis_url"`
	RedisKeyPrefix     string `yaml:"redis_key_prefix"`
	RedisTTLSeconds    int    `yaml:"redis_ttl_seconds"`

	// Translator circuit breaker
	BreakerEnabled     bool `yaml:"breaker_enabled"`
	BreakerMaxFailures int  `yaml:"breaker_max_failures"`
	BreakerOpenSeconds int  `yaml:"breaker_open_seconds"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Authentication
	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`

	// Feature flags
	EnableMetrics  bool   `yaml:"enable_metrics"`
	MetricsBackend string `yaml:"metrics_backend"`
	EnableTracing  bool   `yaml:"enable_tracing"`
	EnableCORS     bool   `yaml:"enable_cors"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ServerAddress:      ":8080",
		Environment:        "development",
		AWSRegion:          "eu-west-1",
		TableName:          "Games",
		LangTableName:      "TranslationTable",
		SourceLanguage:     "en",
		TranslatorProvider: TranslatorAWS,
		OpenAIModel:        "gpt-4o-mini",
		TranslationStore:   StoreDynamoDB,
		RedisURL:           "redis://localhost:6379/0",
		RedisKeyPrefix:     "games:translation:",
		BreakerEnabled:     true,
		BreakerMaxFailures: 5,
		BreakerOpenSeconds: 30,
		LogLevel:           "info",
		JWTIssuer:          "games-backend",
		MetricsBackend:     MetricsCloudWatch,
		EnableCORS:         true,
	}
}

// LoadConfig loads configuration from the built-in defaults, the YAML file
// named by CONFIG_FILE if any, and environment variables, in that order of
// increasing priority.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)

	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.TableName = getEnv("TABLE_NAME", c.TableName)
	c.LangTableName = getEnv("LANG_TABLE_NAME", c.LangTableName)
	c.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", c.DynamoDBEndpoint)
	c.EventBusName = getEnv("EVENT_BUS_NAME", c.EventBusName)

	c.SourceLanguage = getEnv("SOURCE_LANGUAGE", c.SourceLanguage)
	c.TranslatorProvider = getEnv("TRANSLATOR_PROVIDER", c.TranslatorProvider)
	c.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.OpenAIModel = getEnv("OPENAI_MODEL", c.OpenAIModel)
	c.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", c.OpenAIBaseURL)
	c.TranslationStore = getEnv("TRANSLATION_STORE", c.TranslationStore)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", c.RedisKeyPrefix)
	c.RedisTTLSeconds = getEnvInt("REDIS_TTL_SECONDS", c.RedisTTLSeconds)

	c.BreakerEnabled = getEnvBool("BREAKER_ENABLED", c.BreakerEnabled)
	c.BreakerMaxFailures = getEnvInt("BREAKER_MAX_FAILURES", c.BreakerMaxFailures)
	c.BreakerOpenSeconds = getEnvInt("BREAKER_OPEN_SECONDS", c.BreakerOpenSeconds)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTIssuer = getEnv("JWT_ISSUER", c.JWTIssuer)

	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.MetricsBackend = getEnv("METRICS_BACKEND", c.MetricsBackend)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.TableName == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.SourceLanguage == "" {
		return fmt.Errorf("SOURCE_LANGUAGE is required")
	}

	switch c.TranslatorProvider {
	case TranslatorAWS:
	case TranslatorOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when TRANSLATOR_PROVIDER is %s", TranslatorOpenAI)
		}
	default:
		return fmt.Errorf("unknown TRANSLATOR_PROVIDER %q", c.TranslatorProvider)
	}

	switch c.TranslationStore {
	case StoreDynamoDB:
		if c.LangTableName == "" {
			return fmt.Errorf("LANG_TABLE_NAME is required")
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when TRANSLATION_STORE is %s", StoreRedis)
		}
	default:
		return fmt.Errorf("unknown TRANSLATION_STORE %q", c.TranslationStore)
	}

	if c.EnableMetrics && c.MetricsBackend != MetricsCloudWatch && c.MetricsBackend != MetricsPrometheus {
		return fmt.Errorf("unknown METRICS_BACKEND %q", c.MetricsBackend)
	}

	if c.Environment == "production" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// BreakerOpenTimeout returns how long the translator breaker stays open
func (c *Config) BreakerOpenTimeout() time.Duration {
	return time.Duration(c.BreakerOpenSeconds) * time.Second
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
