package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jander96/bloc-scroll-paging/internal/feed"
)

const defaultAPIURL = "http://" + feed.DefaultAPIAddr

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	APIURL   string        `mapstructure:"api-url"`
	PageSize int           `mapstructure:"page-size"`
	Debounce time.Duration `mapstructure:"debounce"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SCROLLFEED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-url", defaultAPIURL)
	v.SetDefault("page-size", feed.DefaultPageSize)
	v.SetDefault("debounce", feed.DefaultDebounce)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "scrollfeed", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("invalid page-size: %d", cfg.PageSize)
	}
	if cfg.Debounce < 0 {
		return cfg, fmt.Errorf("invalid debounce: %s", cfg.Debounce)
	}

	return cfg, nil
}
