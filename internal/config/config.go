package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the seoscore configuration
type Config struct {
	Format    string        `mapstructure:"format" validate:"oneof=json console"`
	LogLevel  string        `mapstructure:"logLevel" validate:"oneof=debug info warn error"`
	LogFormat string        `mapstructure:"logFormat" validate:"oneof=json console"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Parallel  bool          `mapstructure:"parallel"`
	Disabled  []string      `mapstructure:"disabled"`
	Review    ReviewConfig  `mapstructure:"review"`
	Store     StoreConfig   `mapstructure:"store"`
}

// ReviewConfig narrows the report to what needs attention
type ReviewConfig struct {
	ProblemsOnly bool     `mapstructure:"problemsOnly"`
	Exclude      []string `mapstructure:"exclude"`
}

// StoreConfig selects the metadata store used to hydrate requests
type StoreConfig struct {
	Driver string      `mapstructure:"driver" validate:"oneof=none memory redis"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Address  string `mapstructure:"address" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
	Prefix   string `mapstructure:"prefix"`
}

// ConfigFiles are tried in order; the first readable one wins.
var ConfigFiles = []string{".seoscorerc.json", ".seoscorerc.yaml", ".seoscorerc.yml"}

// LoadConfig loads configuration from defaults, the first config file found
// in the working directory, .env and SEOSCORE_* environment variables, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("format", "json")
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("logFormat", "json")
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("parallel", true)
	viper.SetDefault("disabled", []string{})
	viper.SetDefault("review.problemsOnly", false)
	viper.SetDefault("review.exclude", []string{})
	viper.SetDefault("store.driver", "none")
	viper.SetDefault("store.redis.address", "localhost:6379")
	viper.SetDefault("store.redis.password", "")
	viper.SetDefault("store.redis.db", 0)
	viper.SetDefault("store.redis.prefix", "seoscore:")

	// Config file locations
	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// .env is optional
	_ = godotenv.Load()

	// Environment variables
	viper.SetEnvPrefix("SEOSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	err := validator.New().Struct(config)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
