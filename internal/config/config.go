package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Shopify ShopifyConfig `mapstructure:"shopify"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// ShopifyConfig holds Shopify Admin GraphQL API configuration
type ShopifyConfig struct {
	Endpoint             string `mapstructure:"endpoint"`
	AccessToken          string `mapstructure:"access_token"`
	PageSize             int    `mapstructure:"page_size"`
	Concurrency          int    `mapstructure:"concurrency"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// LabelRule maps a product type keyword to a feed custom label.
// Rules are checked in declaration order, first match wins.
type LabelRule struct {
	Keyword string `mapstructure:"keyword"`
	Label   string `mapstructure:"label"`
}

// FeedConfig holds feed generation configuration
type FeedConfig struct {
	StorefrontBaseURL    string      `mapstructure:"storefront_base_url"`
	DescriptionMaxLength int         `mapstructure:"description_max_length"`
	OnError              string      `mapstructure:"on_error"`
	Labels               []LabelRule `mapstructure:"labels"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level     string `mapstructure:"level"`
	ErrorFile string `mapstructure:"error_file"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks required fields and normalizes bounds.
func (c *Config) Validate() error {
	if c.Shopify.Endpoint == "" {
		return fmt.Errorf("shopify.endpoint is required")
	}
	if c.Shopify.AccessToken == "" {
		return fmt.Errorf("shopify.access_token is required")
	}
	if c.Shopify.Concurrency < 1 {
		c.Shopify.Concurrency = 1
	}
	if c.Shopify.MaxRequestsPerSecond < 1 {
		c.Shopify.MaxRequestsPerSecond = 1
	}
	switch c.Feed.OnError {
	case "abort", "partial", "empty":
	default:
		return fmt.Errorf("feed.on_error must be one of abort, partial, empty; got %q", c.Feed.OnError)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")

	viper.SetDefault("shopify.page_size", 250)
	viper.SetDefault("shopify.concurrency", 5)
	viper.SetDefault("shopify.timeout", 30)
	viper.SetDefault("shopify.max_retries", 3)
	viper.SetDefault("shopify.max_requests_per_second", 4)

	viper.SetDefault("feed.storefront_base_url", "https://barbecuesgalore.ca")
	viper.SetDefault("feed.description_max_length", 5000)
	viper.SetDefault("feed.on_error", "empty")
	viper.SetDefault("feed.labels", defaultLabelRules())

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.error_file", "logs/feed-errors.log")
}

func defaultLabelRules() []map[string]string {
	return []map[string]string{
		{"keyword": "Thermometers", "label": "Thermometers"},
		{"keyword": "Tools & Gadgets", "label": "Tools and gadgets"},
		{"keyword": "Covers & Mats > Covers", "label": "Barbecue covers"},
		{"keyword": "Seasonings", "label": "label4"},
		{"keyword": "Sauces & Spices", "label": "label5"},
		{"keyword": "Charcoal Accessories > Fire Starters", "label": "label6"},
		{"keyword": "Charcoal Accessories > Heat Diffusers", "label": "label6"},
	}
}
