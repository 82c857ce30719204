package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Garmin    GarminConfig    `yaml:"garmin"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	BearerToken string `yaml:"bearer_token"`
}

type GarminConfig struct {
	BaseURL  string `yaml:"base_url"`
	StateDir string `yaml:"state_dir"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix FREESTRIDE_ and underscore-separated paths:
//
//	FREESTRIDE_SERVER_HOST, FREESTRIDE_SERVER_PORT,
//	FREESTRIDE_AUTH_BEARER_TOKEN,
//	FREESTRIDE_GARMIN_BASE_URL, FREESTRIDE_GARMIN_STATE_DIR,
//	FREESTRIDE_TS_HOSTNAME, FREESTRIDE_TS_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FREESTRIDE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FREESTRIDE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FREESTRIDE_AUTH_BEARER_TOKEN"); v != "" {
		cfg.Auth.BearerToken = v
	}
	if v := os.Getenv("FREESTRIDE_GARMIN_BASE_URL"); v != "" {
		cfg.Garmin.BaseURL = v
	}
	if v := os.Getenv("FREESTRIDE_GARMIN_STATE_DIR"); v != "" {
		cfg.Garmin.StateDir = v
	}
	if v := os.Getenv("FREESTRIDE_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("FREESTRIDE_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Garmin.StateDir == "" {
		cfg.Garmin.StateDir = "./state"
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "freestride"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	return nil
}
