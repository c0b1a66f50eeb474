package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/storewise/category-resolver/resolver"
)

const (
	AppName     = "category-resolver"
	EnvFileName = "config.env"
)

// Config holds the settings the CLIs need to reach a storefront backend.
type Config struct {
	BaseURL string
	SiteID  string
	Auth    string
	Mode    resolver.Mode
}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// Load reads configuration from the environment after loading the optional
// env file. It reports every missing required variable at once.
func Load() (Config, error) {
	LoadEnvFile()

	cfg := Config{
		BaseURL: os.Getenv("CATALOG_BASE_URL"),
		SiteID:  os.Getenv("CATALOG_SITE_ID"),
		Auth:    os.Getenv("CATALOG_AUTH"),
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "CATALOG_BASE_URL")
	}
	if cfg.SiteID == "" {
		missing = append(missing, "CATALOG_SITE_ID")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required config: %v", missing)
	}

	switch mode := os.Getenv("RESOLVER_MODE"); mode {
	case "", "classification":
		cfg.Mode = resolver.ModeClassification
	case "generic":
		cfg.Mode = resolver.ModeGeneric
	default:
		return Config{}, fmt.Errorf("invalid RESOLVER_MODE %q (want classification or generic)", mode)
	}

	return cfg, nil
}
