package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/bibbank/routing-service/pkg/kafka"
	"github.com/bibbank/routing-service/pkg/postgres"
)

// Config holds all configuration for the routing service.
type Config struct {
	// Database configuration
	Database postgres.Config
	// Kafka configuration
	Kafka KafkaConfig
	// JWT configuration
	JWT JWTConfig
	// Service name for observability
	ServiceName string
	// OTLP collector endpoint; empty disables tracing
	OTLPEndpoint   string
	LogLevel       string
	LogFormat      string
	MigrationsPath string
	GRPCTLSCert    string
	GRPCTLSKey     string
	// gRPC server port
	GRPCPort int
	// HTTP API/health/metrics port
	HTTPPort     int
	BatchMaxSize int
	// AuditEnabled turns on the Postgres audit log and Kafka events.
	AuditEnabled   bool
	GRPCReflection bool
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Topic string
	kafka.Config
}

// JWTConfig holds token verification settings.
type JWTConfig struct {
	Secret string
	// PublicKeyPEM switches verification to RS256 and takes precedence over Secret.
	PublicKeyPEM string
	Issuer       string
}

// Validate checks required configuration values.
func (c Config) Validate() error {
	var errs []error
	if c.AuditEnabled && c.Database.Password == "" {
		errs = append(errs, errors.New("DB_PASSWORD environment variable is required when AUDIT_ENABLED is true"))
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyPEM == "" {
		errs = append(errs, errors.New("JWT_SECRET or JWT_PUBLIC_KEY environment variable is required"))
	}
	if c.AuditEnabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS must list at least one broker when AUDIT_ENABLED is true"))
	}
	if c.BatchMaxSize <= 0 {
		errs = append(errs, errors.New("BATCH_MAX_SIZE must be positive"))
	}
	if (c.GRPCTLSCert == "") != (c.GRPCTLSKey == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		GRPCPort:       getEnvInt("GRPC_PORT", 9091),
		HTTPPort:       getEnvInt("HTTP_PORT", 8091),
		ServiceName:    getEnv("SERVICE_NAME", "routing-service"),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "internal/infrastructure/postgres/migrations"),
		BatchMaxSize:   getEnvInt("BATCH_MAX_SIZE", 1000),
		AuditEnabled:   getEnvBool("AUDIT_ENABLED", true),
		GRPCTLSCert:    getEnv("GRPC_TLS_CERT_FILE", ""),
		GRPCTLSKey:     getEnv("GRPC_TLS_KEY_FILE", ""),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		Database: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "bib"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "bib_routing"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2)),
		},
		Kafka: KafkaConfig{
			Topic: getEnv("KAFKA_TOPIC", "bib.routing.validations"),
			Config: kafka.Config{
				Brokers:       getEnvList("KAFKA_BROKERS", "localhost:9092"),
				TLS:           getEnvBool("KAFKA_TLS", false),
				SASLEnabled:   getEnvBool("KAFKA_SASL_ENABLED", false),
				SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "SCRAM-SHA-512"),
				SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
				SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
			},
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			PublicKeyPEM: getEnv("JWT_PUBLIC_KEY", ""),
			Issuer:       getEnv("JWT_ISSUER", "bib"),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvList(key, defaultVal string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultVal), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
