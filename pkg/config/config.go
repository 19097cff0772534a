package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	RateAPI   RateAPIConfig   `yaml:"rate_api"`
	Rails     RailsConfig     `yaml:"rails"`
	Payments  PaymentsConfig  `yaml:"payments"`
	Logger    LoggerConfig    `yaml:"logger"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	User            string `yaml:"user"`
	DBName          string `yaml:"name"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

// RateAPIConfig points at the price oracle. Timeout is in seconds; lookups are
// single-shot, there is no retry or cache.
type RateAPIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Provider string `yaml:"provider"`
	Timeout  int    `yaml:"timeout"`
}

// RailsConfig selects the banking-rails provider. Mode is "simulated" or
// "moov"; exactly one payout dispatcher is wired from it at startup.
type RailsConfig struct {
	Mode      string `yaml:"mode"`
	BaseURL   string `yaml:"base_url"`
	AccountID string `yaml:"account_id"`
	Timeout   int    `yaml:"timeout"`
}

type PaymentsConfig struct {
	HostedBaseURL string `yaml:"hosted_base_url"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	TimeFormat string `yaml:"time_format"`
	Pretty     bool   `yaml:"pretty"`
}

type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
}

func Load() (*Config, error) {
	// .env is optional; environment variables win when present.
	_ = godotenv.Load()

	path := os.Getenv("C2B_CONFIG")
	if path == "" {
		path = "./config.yaml"
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("MOOV_BASE_URL"); v != "" {
		c.Rails.BaseURL = v
	}
	if v := os.Getenv("MOOV_ACCOUNT_ID"); v != "" {
		c.Rails.AccountID = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "4000"
	}
	if c.RateAPI.BaseURL == "" {
		c.RateAPI.BaseURL = "https://api.coingecko.com"
	}
	if c.RateAPI.Provider == "" {
		c.RateAPI.Provider = "coingecko"
	}
	if c.RateAPI.Timeout <= 0 {
		c.RateAPI.Timeout = 5
	}
	if c.Rails.Mode == "" {
		c.Rails.Mode = "simulated"
	}
	if c.Rails.Timeout <= 0 {
		c.Rails.Timeout = 10
	}
	if c.Payments.HostedBaseURL == "" {
		c.Payments.HostedBaseURL = "https://demo.crypto2bank.local/pay"
	}
	if c.WebSocket.ReadBufferSize <= 0 {
		c.WebSocket.ReadBufferSize = 1024
	}
	if c.WebSocket.WriteBufferSize <= 0 {
		c.WebSocket.WriteBufferSize = 1024
	}
}
