package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Content ContentConfig `mapstructure:"content"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Home    HomeConfig    `mapstructure:"home"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// ContentConfig holds settings for the remote content API.
type ContentConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	TimeoutSeconds       int    `mapstructure:"timeout_seconds"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// AuthConfig holds the JWT settings protecting admin routes.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// HomeConfig holds the homepage strip tuning knobs. Widths are in pixels
// and mirror what the storefront renders with.
type HomeConfig struct {
	BannerIntervalMs   int     `mapstructure:"banner_interval_ms"`
	CategoryIntervalMs int     `mapstructure:"category_interval_ms"`
	CategoryStep       float64 `mapstructure:"category_step"`
	DealIntervalMs     int     `mapstructure:"deal_interval_ms"`
	DealStepFactor     float64 `mapstructure:"deal_step_factor"`
	ViewportWidth      float64 `mapstructure:"viewport_width"`
	CategoryItemWidth  float64 `mapstructure:"category_item_width"`
	DealItemWidth      float64 `mapstructure:"deal_item_width"`
}

// Timeout returns the remote request timeout as a duration.
func (c ContentConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BannerInterval returns the top banner rotation period.
func (c HomeConfig) BannerInterval() time.Duration {
	return time.Duration(c.BannerIntervalMs) * time.Millisecond
}

// CategoryInterval returns the category strip scroll period.
func (c HomeConfig) CategoryInterval() time.Duration {
	return time.Duration(c.CategoryIntervalMs) * time.Millisecond
}

// DealInterval returns the deal strip scroll period.
func (c HomeConfig) DealInterval() time.Duration {
	return time.Duration(c.DealIntervalMs) * time.Millisecond
}

// Load loads configuration from an optional config.yaml with environment
// variable overrides.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// config.yaml is optional, defaults plus env are enough to run
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")

	viper.SetDefault("content.base_url", "http://localhost:5000/api")
	viper.SetDefault("content.timeout_seconds", 15)
	viper.SetDefault("content.max_requests_per_second", 20)

	viper.SetDefault("auth.jwt_secret", "")

	viper.SetDefault("home.banner_interval_ms", 6000)
	viper.SetDefault("home.category_interval_ms", 3000)
	viper.SetDefault("home.category_step", 200)
	viper.SetDefault("home.deal_interval_ms", 4000)
	viper.SetDefault("home.deal_step_factor", 0.5)
	viper.SetDefault("home.viewport_width", 1200)
	viper.SetDefault("home.category_item_width", 160)
	viper.SetDefault("home.deal_item_width", 320)
}
