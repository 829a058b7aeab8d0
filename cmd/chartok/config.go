package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the chartok configuration file
// (~/.config/chartok/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	MinFreq         *int64 `yaml:"min_freq"`
	IncludeSpecials *bool  `yaml:"include_specials"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chartok", "config.yaml")
}

// applyFitConfig applies config file defaults to fit command variables
// when the corresponding CLI flag was not explicitly set.
func applyFitConfig(c *cli.Command, cfg Config, minFreq *int64, noSpecials *bool) {
	if cfg.MinFreq != nil && !c.IsSet("min-freq") {
		*minFreq = *cfg.MinFreq
	}
	if cfg.IncludeSpecials != nil && !c.IsSet("no-specials") {
		*noSpecials = !*cfg.IncludeSpecials
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or cannot be parsed.
func LoadConfig() Config {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
