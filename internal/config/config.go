package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	SourceBuiltin = "builtin"
	SourceXLSX    = "xlsx"
	SourceSQLite  = "sqlite"
)

var (
	ErrUnknownSource = errors.New("unknown catalog source")
	ErrPathRequired  = errors.New("catalog path is required for this source")
)

// Config holds all configuration of the trainer
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig says where entries are loaded from
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults, the optional trainer.yaml
// lookup paths and TRAINER_* environment overrides set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName("trainer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("TRAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration file (if any) and unmarshals v
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.source", SourceBuiltin)
	v.SetDefault("catalog.path", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin:
		return nil
	case SourceXLSX, SourceSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("%s: %w", c.Catalog.Source, ErrPathRequired)
		}

		return nil
	}

	return fmt.Errorf("%q: %w", c.Catalog.Source, ErrUnknownSource)
}
