package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the fallback config location.
const DefaultConfigPath = "config.yaml"

// Load reads and normalizes the YAML config file. A missing file yields
// the defaults so the process can boot with its seeded in-memory data.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)

	if cfg.Admin.PasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		cfg.Admin.PasswordHash = string(hash)
	}
	cfg.Admin.Password = ""

	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.SessionTTLHrs <= 0 {
		cfg.SessionTTLHrs = 12
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@tesahcapital.com"
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = "Admin User"
	}
	if cfg.Admin.Role == "" {
		cfg.Admin.Role = "admin"
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		cfg.Admin.Password = "admin123"
	}
	if cfg.Markets.Source == "" {
		cfg.Markets.Source = "static"
	}
	if cfg.Markets.CacheTTLSecs <= 0 {
		cfg.Markets.CacheTTLSecs = 60
	}
	if cfg.Paths.Static == "" {
		cfg.Paths.Static = "static"
	}
}
