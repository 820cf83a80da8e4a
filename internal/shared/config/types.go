package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelegramConfig struct {
	BotToken       string `mapstructure:"bot_token"`
	SupportGroupID int64  `mapstructure:"support_group_id"`
	Enabled        bool   `mapstructure:"enabled"`
}

type HubSoftConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Enabled      bool   `mapstructure:"enabled"`
	TimeoutSec   int    `mapstructure:"timeout_sec"`
}

func (h *HubSoftConfig) Timeout() time.Duration {
	if h.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.TimeoutSec) * time.Second
}

// SupportConfig holds the tunables of the ticket-creation flow.
type SupportConfig struct {
	// ConversationTimeoutMinutes is the inactivity window after which an
	// active conversation is eligible for automatic expiry.
	ConversationTimeoutMinutes int `mapstructure:"conversation_timeout_minutes"`
	// CleanupAfterDays controls how long finished conversations are retained
	// before the cleanup sweep removes them.
	CleanupAfterDays int `mapstructure:"cleanup_after_days"`
}

func (s *SupportConfig) ConversationTimeout() time.Duration {
	if s.ConversationTimeoutMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.ConversationTimeoutMinutes) * time.Minute
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type BiztimeConfig struct {
	Timezone string `mapstructure:"timezone"`
}
