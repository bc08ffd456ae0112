/**
 * @description
 * This package handles the configuration management for the service. It uses
 * the Viper library to read configuration from environment variables,
 * providing a centralized and straightforward way to manage application
 * settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the ledger-service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort                string `mapstructure:"SERVER_PORT"`
	DatabaseURL               string `mapstructure:"DATABASE_URL"`
	RedisURL                  string `mapstructure:"REDIS_URL"`
	RedisRateLimitPrefix      string `mapstructure:"REDIS_RATE_LIMIT_PREFIX"`
	RabbitMQURL               string `mapstructure:"RABBITMQ_URL"`
	LedgerEventExchange       string `mapstructure:"LEDGER_EVENT_EXCHANGE"`
	JWTSecret                 string `mapstructure:"JWT_SECRET"`
	JWTTTLHours               int    `mapstructure:"JWT_TTL_HOURS"`
	CommandRateLimitPerMinute int    `mapstructure:"COMMAND_RATE_LIMIT_PER_MINUTE"`
	SeedDemoData              bool   `mapstructure:"SEED_DEMO_DATA"`
	SeedAdminUsername         string `mapstructure:"SEED_ADMIN_USERNAME"`
	SeedAdminPassword         string `mapstructure:"SEED_ADMIN_PASSWORD"`
}

// LoadConfig reads configuration from environment variables from the given path.
// It uses Viper to automatically bind environment variables to the Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "4000")
	viper.SetDefault("LEDGER_EVENT_EXCHANGE", "ledger.events")
	viper.SetDefault("REDIS_RATE_LIMIT_PREFIX", "ledger:rate_limit")
	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("COMMAND_RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("SEED_ADMIN_USERNAME", "admin")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("REDIS_RATE_LIMIT_PREFIX")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("LEDGER_EVENT_EXCHANGE")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("JWT_TTL_HOURS")
	_ = viper.BindEnv("COMMAND_RATE_LIMIT_PER_MINUTE")
	_ = viper.BindEnv("SEED_DEMO_DATA")
	_ = viper.BindEnv("SEED_ADMIN_USERNAME")
	_ = viper.BindEnv("SEED_ADMIN_PASSWORD")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		// If the config file is not found, we can ignore the error.
		// For other errors, we should return them.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Platform-injected PORT wins over SERVER_PORT.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}

	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RedisRateLimitPrefix = strings.TrimSpace(config.RedisRateLimitPrefix)
	if config.RedisRateLimitPrefix == "" {
		config.RedisRateLimitPrefix = "ledger:rate_limit"
	}
	if config.JWTTTLHours <= 0 {
		log.Printf("level=warn component=config msg=\"invalid JWT_TTL_HOURS; using default\" value=%d", config.JWTTTLHours)
		config.JWTTTLHours = 24
	}
	if config.CommandRateLimitPerMinute < 0 {
		log.Printf("level=warn component=config msg=\"invalid COMMAND_RATE_LIMIT_PER_MINUTE; disabling limiter\" value=%d", config.CommandRateLimitPerMinute)
		config.CommandRateLimitPerMinute = 0
	}

	return
}
