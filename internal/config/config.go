package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/billfold/billfold/internal/types"
	"github.com/billfold/billfold/internal/validator"
	"github.com/spf13/viper"
)

type Configuration struct {
	API     APIConfig     `validate:"required"`
	Logging LoggingConfig `validate:"required"`
}

// APIConfig holds the connection settings for the remote invoicing API.
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
	Token    string `mapstructure:"token" validate:"required"`
	Timeout  time.Duration
	RetryMax int `mapstructure:"retry_max"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billfold")

	// Set up environment variables support
	v.SetEnvPrefix("BILLFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.retry_max", 3)
	v.SetDefault("logging.level", types.LogLevelInfo)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	return validator.ValidateRequest(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		API: APIConfig{
			BaseURL:  "https://invoicing.example.com/api",
			Token:    "test-token",
			Timeout:  30 * time.Second,
			RetryMax: 3,
		},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
	}
}
