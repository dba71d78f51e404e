package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	StakeKit StakeKitConfig `mapstructure:"stakekit"`
	Custody  CustodyConfig  `mapstructure:"custody"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Legacy   LegacyConfig   `mapstructure:"legacy"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// StakeKitConfig configures the staking provider client and the saga loop.
type StakeKitConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	APIKey               string        `mapstructure:"api_key"`
	ConnectTimeout       time.Duration `mapstructure:"connect_timeout"`
	Timeout              time.Duration `mapstructure:"timeout"`
	RetryMaxAttempts     int           `mapstructure:"retry_max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	PollMaxAttempts      int           `mapstructure:"poll_max_attempts"`
	GasTier              string        `mapstructure:"gas_tier"` // economy, market, fast
}

type CustodyConfig struct {
	OperatorPrivateKey string `mapstructure:"operator_private_key"`
	Mnemonic           string `mapstructure:"mnemonic"`
}

type ChainConfig struct {
	RPCURLs             map[string]string `mapstructure:"rpc_urls"` // chain id -> url
	ReceiptTimeout      time.Duration     `mapstructure:"receipt_timeout"`
	ReceiptPollInterval time.Duration     `mapstructure:"receipt_poll_interval"`
}

// RPCURL resolves the RPC endpoint for a chain. WEB3_URL_<chainId> wins over
// the configured map so deployments can keep using the historical variables.
func (c ChainConfig) RPCURL(chainID int64) (string, bool) {
	key := strconv.FormatInt(chainID, 10)
	if u := os.Getenv("WEB3_URL_" + key); u != "" {
		return u, true
	}
	u, ok := c.RPCURLs[key]
	return u, ok && u != ""
}

type LegacyConfig struct {
	LockTTL          time.Duration `mapstructure:"lock_ttl"`
	SagaTimeout      time.Duration `mapstructure:"saga_timeout"`
	WithdrawCooldown time.Duration `mapstructure:"withdraw_cooldown"` // 0 = disabled
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type WorkerConfig struct {
	ClaimEnabled     bool          `mapstructure:"claim_enabled"`
	ClaimInterval    time.Duration `mapstructure:"claim_interval"`
	ClaimConcurrency int           `mapstructure:"claim_concurrency"`
	ClaimBatch       int           `mapstructure:"claim_batch"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: AEVIA_.
// Nested keys use underscore: AEVIA_DATABASE_HOST, AEVIA_STAKEKIT_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "aevia")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "aevia-legacy")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("stakekit.base_url", "https://api.stakek.it/v1")
	v.SetDefault("stakekit.api_key", "")
	v.SetDefault("stakekit.connect_timeout", "10s")
	v.SetDefault("stakekit.timeout", "300s")
	v.SetDefault("stakekit.retry_max_attempts", 3)
	v.SetDefault("stakekit.retry_initial_interval", "500ms")
	v.SetDefault("stakekit.poll_interval", "1s")
	v.SetDefault("stakekit.poll_max_attempts", 300)
	v.SetDefault("stakekit.gas_tier", "market")
	v.SetDefault("custody.operator_private_key", "")
	v.SetDefault("custody.mnemonic", "")
	v.SetDefault("chain.rpc_urls", map[string]string{})
	v.SetDefault("chain.receipt_timeout", "5m")
	v.SetDefault("chain.receipt_poll_interval", "2s")
	v.SetDefault("legacy.lock_ttl", "15m")
	v.SetDefault("legacy.saga_timeout", "10m")
	v.SetDefault("legacy.withdraw_cooldown", "0s")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "aevia.legacy.events")
	v.SetDefault("worker.claim_enabled", false)
	v.SetDefault("worker.claim_interval", "6h")
	v.SetDefault("worker.claim_concurrency", 4)
	v.SetDefault("worker.claim_batch", 100)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: AEVIA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("AEVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.StakeKit.BaseURL == "" {
		errs = append(errs, errors.New("stakekit.base_url is required"))
	}
	if c.StakeKit.APIKey == "" {
		errs = append(errs, errors.New("stakekit.api_key is required"))
	}
	if c.StakeKit.PollInterval <= 0 || c.StakeKit.PollMaxAttempts <= 0 {
		errs = append(errs, errors.New("stakekit poll interval and max attempts must be positive"))
	}
	switch c.StakeKit.GasTier {
	case "economy", "market", "fast":
	default:
		errs = append(errs, fmt.Errorf("stakekit.gas_tier %q is not one of economy, market, fast", c.StakeKit.GasTier))
	}
	if c.Custody.OperatorPrivateKey == "" {
		errs = append(errs, errors.New("custody.operator_private_key is required"))
	}
	if c.Custody.Mnemonic == "" {
		errs = append(errs, errors.New("custody.mnemonic is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	// The legacy lock is not refreshed, so it must outlive the longest saga.
	if c.Legacy.SagaTimeout <= 0 {
		errs = append(errs, errors.New("legacy.saga_timeout must be positive"))
	} else if c.Legacy.LockTTL <= c.Legacy.SagaTimeout {
		errs = append(errs, fmt.Errorf("legacy.lock_ttl %s must be greater than legacy.saga_timeout %s", c.Legacy.LockTTL, c.Legacy.SagaTimeout))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("kafka.brokers is required when kafka is enabled"))
	}
	return errors.Join(errs...)
}
