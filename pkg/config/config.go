package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the process-wide report settings. Currency, unit, company
// and the period labels are substituted verbatim into the output text.
type Config struct {
	Currency    string `mapstructure:"currency"`
	Unit        string `mapstructure:"unit"`
	Company     string `mapstructure:"company"`
	CurrentYear int    `mapstructure:"current_year"`
	LastYear    int    `mapstructure:"last_year"`
	Delimiter   string `mapstructure:"delimiter"`
	OutputDir   string `mapstructure:"output"`
}

// Build loads configuration in increasing precedence: built-in defaults,
// the optional config file, FINSTAT_* environment variables, then command
// line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("currency", "$")
	v.SetDefault("unit", "m")
	v.SetDefault("company", "Wokki Company")
	v.SetDefault("current_year", 2023)
	v.SetDefault("last_year", 2022)
	v.SetDefault("delimiter", ",")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINSTAT")
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
