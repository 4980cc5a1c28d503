package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultCacheTTL          = time.Hour
	DefaultClassifierTimeout = 30 * time.Second
	DefaultMaxLength         = 512
	DefaultBatchMaxSize      = 32
	DefaultBatchConcurrency  = 4
	DefaultWSMaxConnections  = 1000
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	WebSocket  WebSocketConfig  `mapstructure:"websocket"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	AdminPort   int    `mapstructure:"admin_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	SecretKey   string `mapstructure:"secret_key"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
	// FailOpen treats cache errors as misses (reads) or skips caching (writes)
	// instead of failing the request.
	FailOpen bool `mapstructure:"fail_open"`
}

type ClassifierConfig struct {
	Provider  string                 `mapstructure:"provider"`
	Timeout   time.Duration          `mapstructure:"timeout"`
	MaxLength int                    `mapstructure:"max_length"`
	Settings  map[string]interface{} `mapstructure:"settings"`
}

type BatchConfig struct {
	MaxSize     int `mapstructure:"max_size"`
	Concurrency int `mapstructure:"concurrency"`
}

type WebSocketConfig struct {
	MaxConnections int `mapstructure:"max_connections"`
}

type TelemetryConfig struct {
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Topic   string `mapstructure:"topic"`
}

// Load reads config.yaml from configPath (falling back to ./config and .)
// and overlays environment variables. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaultValues(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.admin_port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.secret_key", "")

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.fail_open", true)

	v.SetDefault("classifier.provider", "inference")
	v.SetDefault("classifier.timeout", DefaultClassifierTimeout)
	v.SetDefault("classifier.max_length", DefaultMaxLength)
	v.SetDefault("classifier.settings", map[string]interface{}{})

	v.SetDefault("batch.max_size", DefaultBatchMaxSize)
	v.SetDefault("batch.concurrency", DefaultBatchConcurrency)

	v.SetDefault("websocket.max_connections", DefaultWSMaxConnections)

	v.SetDefault("telemetry.kafka.enabled", false)
	v.SetDefault("telemetry.kafka.host", "")
	v.SetDefault("telemetry.kafka.port", "9092")
	v.SetDefault("telemetry.kafka.topic", "contentguard.classifications")
}

// bindLegacyEnv keeps the flat variable names used by existing deployments.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port": {"SERVER_PORT", "PORT"},
		"redis.host":  {"REDIS_HOST"},
		"redis.port":  {"REDIS_PORT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive, got %d", c.Server.Port)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Classifier.Provider == "" {
		return errors.New("classifier provider must be specified")
	}
	if c.Batch.MaxSize <= 0 {
		return fmt.Errorf("batch max_size must be positive, got %d", c.Batch.MaxSize)
	}
	if c.Batch.Concurrency <= 0 {
		c.Batch.Concurrency = DefaultBatchConcurrency
	}
	if c.Telemetry.Kafka.Enabled && c.Telemetry.Kafka.Host == "" {
		return errors.New("kafka host is required when kafka telemetry is enabled")
	}
	return nil
}
