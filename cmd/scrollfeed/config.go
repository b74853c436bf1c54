package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultBindHost     = "127.0.0.1"
	defaultAPIPort      = 3900
	defaultCatalogSize  = 500
	defaultSeedFilePath = ""
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Host        string `mapstructure:"host"`
	APIPort     int    `mapstructure:"api-port"`
	APIAddr     string `mapstructure:"api-addr"`
	CatalogSize int    `mapstructure:"catalog-size"`
	SeedFile    string `mapstructure:"seed-file"`
	ConfigPath  string `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SCROLLFEED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("host", defaultBindHost)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("catalog-size", defaultCatalogSize)
	v.SetDefault("seed-file", defaultSeedFilePath)

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
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.CatalogSize < 0 {
		return cfg, fmt.Errorf("invalid catalog-size: %d", cfg.CatalogSize)
	}

	// Expand ~ in seed-file
	if strings.HasPrefix(cfg.SeedFile, "~/") {
		cfg.SeedFile = filepath.Join(home, cfg.SeedFile[2:])
	}

	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}
