package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"apod/pkg/consts"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultClientTimeout = 30 * time.Second

type Config struct {
	ApiKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url"`
	ClientTimeout string `mapstructure:"client_timeout"` // Go duration string like "30s"
	UserAgent     string `mapstructure:"user_agent"`
	LogLevel      string `mapstructure:"log_level"`
	Server        struct {
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"server"`
}

// Load reads config.yaml (if any), a .env file (if any) and the APOD_*
// environment. Missing files are not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("failed to load .env: %s", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("APOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("api_key", "APOD_API_KEY", consts.EnvApiKey)
	_ = v.BindEnv("log_level", "APOD_LOG_LEVEL", "LOG_LEVEL")

	v.SetDefault("base_url", consts.BaseURL)
	v.SetDefault("client_timeout", defaultClientTimeout.String())
	v.SetDefault("user_agent", consts.UserAgent)
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Timeout parses ClientTimeout, falling back to the default when it is
// empty or malformed.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.ClientTimeout == "" {
		return defaultClientTimeout
	}

	d, err := time.ParseDuration(c.ClientTimeout)
	if err != nil || d <= 0 {
		logrus.Warnf("invalid client timeout %q, using %s", c.ClientTimeout, defaultClientTimeout)
		return defaultClientTimeout
	}

	return d
}

// Key returns the configured API key or the public demo key.
func (c *Config) Key() string {
	if c == nil || c.ApiKey == "" {
		return consts.DemoKey
	}
	return c.ApiKey
}

// SetupLogger applies the configured level to the standard logrus logger.
func (c *Config) SetupLogger() {
	level := logrus.InfoLevel
	if c != nil && c.LogLevel != "" {
		parsed, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			logrus.Warnf("invalid log level %q, using %s", c.LogLevel, level)
		} else {
			level = parsed
		}
	}
	logrus.SetLevel(level)
}
