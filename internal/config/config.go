package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DiscordConfig holds Discord gateway configuration
type DiscordConfig struct {
	Token   string `mapstructure:"token"`
	GuildID string `mapstructure:"guild_id"`
}

// RegistryConfig holds the address registry persistence configuration
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// SnapshotConfig holds the collection snapshot API configuration
type SnapshotConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// ProfileConfig holds the wallet profile (bio) API configuration
type ProfileConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// RateLimitConfig holds the shared outbound rate limiter configuration
type RateLimitConfig struct {
	CallsPerWindow int           `mapstructure:"calls_per_window"` // admitted calls per rolling window
	Window         time.Duration `mapstructure:"window"`
	MaxWorkers     int           `mapstructure:"max_workers"`
	MaxQueueSize   int           `mapstructure:"max_queue_size"`
	MaxQueueTime   time.Duration `mapstructure:"max_queue_time"`
}

// SweepConfig holds the periodic verification sweep configuration
type SweepConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	UserPause time.Duration `mapstructure:"user_pause"` // pause between users to spread load
}

// NATSConfig holds NATS JetStream configuration for role-change audit events
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// BotConfig holds configuration for the bot process
type BotConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Discord      DiscordConfig     `mapstructure:"discord"`
	Registry     RegistryConfig    `mapstructure:"registry"`
	Snapshot     SnapshotConfig    `mapstructure:"snapshot"`
	Profile      ProfileConfig     `mapstructure:"profile"`
	RateLimit    RateLimitConfig   `mapstructure:"rate_limit"`
	Sweep        SweepConfig       `mapstructure:"sweep"`
	NATS         NATSConfig        `mapstructure:"nats"`
	HTTP         HTTPConfig        `mapstructure:"http"`
	Collections  map[string]string `mapstructure:"collections"` // slug -> role name
	LockFilePath string            `mapstructure:"lock_file_path"`
}

// LoadBotConfig loads configuration for the bot process
func LoadBotConfig(configFile string, envPath string) (*BotConfig, error) {
	v := configureViper("bot", configFile, envPath)

	// Set defaults
	v.SetDefault("registry.path", "data/user_addresses.json")
	v.SetDefault("snapshot.api_url", "https://v2api.bestinslot.xyz/collection/snapshot")
	v.SetDefault("profile.api_url", "https://api-mainnet.magiceden.dev/v2/wallets")
	v.SetDefault("rate_limit.calls_per_window", 30)
	v.SetDefault("rate_limit.window", "60s")
	v.SetDefault("rate_limit.max_workers", 8)
	v.SetDefault("rate_limit.max_queue_size", 256)
	v.SetDefault("rate_limit.max_queue_time", "5m")
	v.SetDefault("sweep.interval", "30m")
	v.SetDefault("sweep.user_pause", "1s")
	v.SetDefault("nats.stream_name", "ROLE_EVENTS")
	v.SetDefault("nats.connection_name", "holderbot")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("lock_file_path", "bot.lock")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg BotConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, errors.New("discord.token is required")
	}
	if cfg.Discord.GuildID == "" {
		return nil, errors.New("discord.guild_id is required")
	}
	if len(cfg.Collections) == 0 {
		return nil, errors.New("at least one collection must be configured")
	}
	if cfg.RateLimit.CallsPerWindow <= 0 {
		return nil, errors.New("rate_limit.calls_per_window must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		return nil, errors.New("rate_limit.window must be positive")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("HOLDERBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Discord
		"discord.token",
		"discord.guild_id",
		// Registry
		"registry.path",
		// External APIs
		"snapshot.api_url",
		"profile.api_url",
		// Rate limiter
		"rate_limit.calls_per_window",
		"rate_limit.window",
		"rate_limit.max_workers",
		"rate_limit.max_queue_size",
		"rate_limit.max_queue_time",
		// Sweep
		"sweep.interval",
		"sweep.user_pause",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.connection_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		// HTTP
		"http.timeout",
		// Process
		"lock_file_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
