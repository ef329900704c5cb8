package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// loadConfigFile reads a deployment configuration from a JSON file,
// layering it over the recommended defaults. A nil plugin list selects the
// catalog's default plugins; an explicit empty list selects none.
func loadConfigFile(path string, cat catalog.Catalog) (deploy.Config, error) {
	cfg := deploy.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse configuration %s: %w", path, err)
	}
	if cfg.Plugins == nil {
		cfg.Plugins = cat.Defaults()
	}
	return cfg, nil
}

// githubToken returns the token flag value, falling back to the
// GITHUB_TOKEN environment variable.
func githubToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GITHUB_TOKEN")
}
