package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig holds the configuration of the REST API application
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger" validate:"required"`
	Database DatabaseSettings `mapstructure:"database" validate:"required"`
}

// Validate checks that all REST config sections are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST application configuration from the
// given YAML file. Environment variables override file values (e.g.
// DATABASE_DSN overrides database.dsn).
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var restConfig RestConfig
	if err := v.Unmarshal(&restConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := restConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &restConfig, nil
}
