// Package config loads the application configuration from file and
// environment through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedconfig "klevant/internal/shared/config"
)

type Config struct {
	Server   sharedconfig.ServerConfig   `mapstructure:"server"`
	Database sharedconfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedconfig.LoggerConfig   `mapstructure:"logger"`
	Auth     sharedconfig.AuthConfig     `mapstructure:"auth"`
	Email    sharedconfig.EmailConfig    `mapstructure:"email"`
	Redis    sharedconfig.RedisConfig    `mapstructure:"redis"`
	Company  sharedconfig.CompanyConfig  `mapstructure:"company"`
}

// Load reads configs/config.yaml (or the file at configPath) and applies
// KLEVANT_ prefixed environment overrides, e.g. KLEVANT_DATABASE_PASSWORD.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("KLEVANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "klevant.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("auth.access_exp_minutes", 15)
	v.SetDefault("auth.refresh_exp_days", 7)
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.from_name", "Klevant Technologies")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("company.name", "KLEVANT TECHNOLOGIES")
	v.SetDefault("company.tagline", "Sales and Service")
	v.SetDefault("company.phone", "")
	v.SetDefault("company.email", "")
}

func validate(cfg *Config) error {
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Database.Driver != "mysql" && cfg.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	return nil
}
