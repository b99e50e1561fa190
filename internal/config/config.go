package config

import (
	"countries/internal/country"
	"countries/internal/fetch"
	"countries/internal/flags"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Values come from the config file,
// COUNTRIES_* environment variables and CLI flags, in increasing priority.
type Config struct {
	URL            string `mapstructure:"url"`
	Data           string `mapstructure:"data"`
	Sort           string `mapstructure:"sort"`
	Region         string `mapstructure:"region"`
	Verbose        bool   `mapstructure:"verbose"`
	FlagProbeLimit int    `mapstructure:"flag_probe_limit"`
}

// Load reads configuration into v. An explicit path must exist; the default
// path is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetDefault("url", fetch.DefaultURL)
	v.SetDefault("data", "")
	v.SetDefault("sort", string(country.SortAlphabetical))
	v.SetDefault("region", country.Worldwide)
	v.SetDefault("verbose", false)
	v.SetDefault("flag_probe_limit", flags.DefaultLimit)

	v.SetEnvPrefix("COUNTRIES")
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config path: %w", err)
	}

	if _, err := os.Stat(expanded); err == nil {
		v.SetConfigFile(expanded)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %q: %w", expanded, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot access config %q: %w", expanded, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Query builds the initial directory query.
func (c Config) Query() (country.Query, error) {
	sort, err := country.ParseSortOption(c.Sort)
	if err != nil {
		return country.Query{}, err
	}
	return country.Query{Region: c.Region, Sort: sort}.Normalize(), nil
}
