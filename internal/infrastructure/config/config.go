package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/oncabito/sentinela/internal/shared/config"
)

// Aliases so callers outside the config wiring can name the section types
// without importing both packages.
type (
	ServerConfig   = sharedConfig.ServerConfig
	DatabaseConfig = sharedConfig.DatabaseConfig
	LoggerConfig   = sharedConfig.LoggerConfig
	RedisConfig    = sharedConfig.RedisConfig
	TelegramConfig = sharedConfig.TelegramConfig
	HubSoftConfig  = sharedConfig.HubSoftConfig
	SupportConfig  = sharedConfig.SupportConfig
	AuthConfig     = sharedConfig.AuthConfig
	BiztimeConfig  = sharedConfig.BiztimeConfig
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Telegram sharedConfig.TelegramConfig `mapstructure:"telegram"`
	HubSoft  sharedConfig.HubSoftConfig  `mapstructure:"hubsoft"`
	Support  sharedConfig.SupportConfig  `mapstructure:"support"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
	Biztime  sharedConfig.BiztimeConfig  `mapstructure:"biztime"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml plus SENTINELA_-prefixed environment
// variables. An env argument other than "default" overrides server.mode.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("SENTINELA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "sentinela_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Telegram defaults (token must be configured)
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.support_group_id", 0)
	viper.SetDefault("telegram.enabled", true)

	// HubSoft defaults (disabled until credentials are configured)
	viper.SetDefault("hubsoft.base_url", "")
	viper.SetDefault("hubsoft.client_id", "")
	viper.SetDefault("hubsoft.client_secret", "")
	viper.SetDefault("hubsoft.enabled", false)
	viper.SetDefault("hubsoft.timeout_sec", 15)

	// Support flow defaults
	viper.SetDefault("support.conversation_timeout_minutes", 30)
	viper.SetDefault("support.cleanup_after_days", 7)

	// Auth defaults
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Business timezone
	viper.SetDefault("biztime.timezone", "America/Bahia")
}
