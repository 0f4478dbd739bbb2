// Package config provides configuration management for devutils using Viper
// for loading from an explicit file, environment variables and command-line
// flags.
//
// Nothing is searched for implicitly and nothing is ever written: a run that
// sets no flag and no DEVUTILS_ variable behaves exactly like the defaults
// below.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/devutils/internal/errors"
)

// EnvPrefix is the prefix of every environment variable viper consults.
const EnvPrefix = "DEVUTILS"

// Defaults.
const (
	DefaultLogLevel            = "warn"
	DefaultLogFormat           = "text"
	DefaultListSeparator       = ","
	DefaultPercentagePrecision = 0
	DefaultTokenLength         = 32
)

type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log" json:"log"`
	Editor     string           `mapstructure:"editor" yaml:"editor" json:"editor"`
	List       ListConfig       `mapstructure:"list" yaml:"list" json:"list"`
	Percentage PercentageConfig `mapstructure:"percentage" yaml:"percentage" json:"percentage"`
	Generate   GenerateConfig   `mapstructure:"generate" yaml:"generate" json:"generate"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type ListConfig struct {
	Separator string `mapstructure:"separator" yaml:"separator" json:"separator"`
}

type PercentageConfig struct {
	Precision int `mapstructure:"precision" yaml:"precision" json:"precision"`
}

type GenerateConfig struct {
	TokenLength int `mapstructure:"token_length" yaml:"token_length" json:"token_length"`
}

// Keys lists every configuration key. Each is bound to its environment
// variable so that viper.Unmarshal sees values that only exist in the
// environment.
var Keys = []string{
	"log.level",
	"log.format",
	"editor",
	"list.separator",
	"percentage.precision",
	"generate.token_length",
}

// SetupEnv wires the DEVUTILS_ environment variables into the global viper
// instance.
func SetupEnv() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for _, key := range Keys {
		if err := viper.BindEnv(key); err != nil {
			return errors.NewConfigError("cannot bind "+key, err)
		}
	}

	return nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		List:       ListConfig{Separator: DefaultListSeparator},
		Percentage: PercentageConfig{Precision: DefaultPercentagePrecision},
		Generate:   GenerateConfig{TokenLength: DefaultTokenLength},
	}
}

// Load reads the configuration out of the global viper instance.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("cannot decode configuration", err)
	}

	// Flags are bound under their own names, so they have to be copied over
	// explicitly when set.
	if viper.IsSet("log-level") {
		config.Log.Level = viper.GetString("log-level")
	}
	if viper.IsSet("log-format") {
		config.Log.Format = viper.GetString("log-format")
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
	config.Log.Format = strings.ToLower(config.Log.Format)

	// An empty separator can only come from an explicit setting, which
	// validation rejects.
	if !viper.IsSet("list.separator") {
		config.List.Separator = DefaultListSeparator
	}
	if !viper.IsSet("generate.token_length") {
		config.Generate.TokenLength = DefaultTokenLength
	}

	if err := validateConfig(&config); err != nil {
		return nil, errors.NewConfigError("invalid configuration", err)
	}

	return &config, nil
}
