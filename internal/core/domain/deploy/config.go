// Package deploy defines the deployment configuration value object and the
// fork-specific runtime naming rules derived from it.
package deploy

import (
	"fmt"
	"strings"
)

// Tuning floors. Anything below these is rejected before any file is written.
const (
	MinRAMGB              = 8
	MinViewDistance       = 4
	MinSimulationDistance = 2
)

// DefaultSlug is used when a server name contains no usable characters.
const DefaultSlug = "minecraft-server"

// Fork identifies the server runtime distribution variant.
type Fork string

const (
	ForkPurpur Fork = "purpur"
	ForkPaper  Fork = "paper"
	ForkSpigot Fork = "spigot"
	ForkForge  Fork = "forge"
)

// UnsupportedForkError is returned when a fork-specific decision is required
// for a fork the generator does not know.
type UnsupportedForkError struct {
	Fork string
}

func (e *UnsupportedForkError) Error() string {
	return fmt.Sprintf("unsupported server fork %q (supported: purpur, paper, spigot, forge)", e.Fork)
}

// ParseFork normalizes a fork identifier.
func ParseFork(s string) (Fork, error) {
	switch Fork(strings.ToLower(strings.TrimSpace(s))) {
	case ForkPurpur:
		return ForkPurpur, nil
	case ForkPaper:
		return ForkPaper, nil
	case ForkSpigot:
		return ForkSpigot, nil
	case ForkForge:
		return ForkForge, nil
	default:
		return "", &UnsupportedForkError{Fork: s}
	}
}

// InstallerBased reports whether the fork ships as an installer that
// generates the server jar, rather than as a directly runnable jar.
func (f Fork) InstallerBased() bool { return f == ForkForge }

// ConfigError reports an invalid deployment configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Config is the deployment configuration supplied by the caller. It is a
// plain value object; construction does not validate, Validate does.
type Config struct {
	ServerName         string   `json:"server_name"`
	Version            string   `json:"version"`
	Fork               Fork     `json:"fork"`
	MaxPlayers         int      `json:"max_players"`
	RAMGB              int      `json:"ram_gb"`
	ViewDistance       int      `json:"view_distance"`
	SimulationDistance int      `json:"simulation_distance"`
	EnableVelocity     bool     `json:"enable_velocity"`
	Plugins            []string `json:"plugins"`
	ManualURLs         []string `json:"manual_urls"`
	OutputDir          string   `json:"output_dir"`
}

// DefaultConfig returns a configuration with the recommended baseline.
func DefaultConfig() Config {
	return Config{
		ServerName:         "Enhanced-SMP",
		Version:            "1.21.10",
		Fork:               ForkPurpur,
		MaxPlayers:         100,
		RAMGB:              24,
		ViewDistance:       8,
		SimulationDistance: 6,
	}
}

// Validate checks the numeric floors and required fields.
func (c Config) Validate() error {
	if c.RAMGB < MinRAMGB {
		return &ConfigError{Field: "ram_gb", Reason: fmt.Sprintf("must be at least %d GB", MinRAMGB)}
	}
	if c.MaxPlayers <= 0 {
		return &ConfigError{Field: "max_players", Reason: "must be positive"}
	}
	if c.ViewDistance < MinViewDistance {
		return &ConfigError{Field: "view_distance", Reason: fmt.Sprintf("must be at least %d", MinViewDistance)}
	}
	if c.SimulationDistance < MinSimulationDistance {
		return &ConfigError{Field: "simulation_distance", Reason: fmt.Sprintf("must be at least %d", MinSimulationDistance)}
	}
	if _, err := ParseFork(string(c.Fork)); err != nil {
		return err
	}
	return nil
}

// CleanManualURLs returns the manual URL list with blanks trimmed away,
// preserving order. Order matters: it defines the fallback filename index.
func (c Config) CleanManualURLs() []string {
	var urls []string
	for _, u := range c.ManualURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Slug derives a filesystem-safe directory slug from the server name.
// Alphanumerics, hyphens and underscores are kept; every other character
// becomes a hyphen; leading and trailing hyphens are stripped. An empty
// result falls back to DefaultSlug.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}
