package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/healsmart/healsmart-api/pkg/validator"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Upstream  UpstreamConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port" validate:"required,min=1,max=65535"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" validate:"required"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

// Expiry returns the token lifetime, defaulting to one hour.
func (c JWTConfig) Expiry() time.Duration {
	if c.ExpiryHours <= 0 {
		return time.Hour
	}
	return time.Duration(c.ExpiryHours) * time.Hour
}

// UpstreamConfig holds the endpoints and credentials of the external
// collaborators. All of them are called with bounded timeouts.
type UpstreamConfig struct {
	PredictorURL   string `mapstructure:"predictor_url"`
	NewsAPIURL     string `mapstructure:"news_api_url"`
	NewsAPIKey     string `mapstructure:"news_api_key"`
	SummarizerURL  string `mapstructure:"summarizer_url"`
	SummarizerKey  string `mapstructure:"summarizer_key"`
	ChatURL        string `mapstructure:"chat_url"`
	ChatKey        string `mapstructure:"chat_key"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

func (c UpstreamConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
