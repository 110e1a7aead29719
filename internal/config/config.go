package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	PostgresDSN     string `mapstructure:"POSTGRES_DSN"`
	DBMaxOpenConns  int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns  int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnLifetime  int    `mapstructure:"DB_CONN_LIFETIME_MINUTES"`
	ShutdownTimeout int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	// no default on purpose; bind so AutomaticEnv can see it
	_ = viper.BindEnv("POSTGRES_DSN")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_CONN_LIFETIME_MINUTES", 30)
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 5)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if c.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	return &c, nil
}

func (c *Config) ConnLifetime() time.Duration {
	return time.Duration(c.DBConnLifetime) * time.Minute
}

func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}
