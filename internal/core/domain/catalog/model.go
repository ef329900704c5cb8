// Package catalog holds the static registry of plugin artifacts the
// generator knows how to resolve and install.
package catalog

import "fmt"

// SourceType identifies how a plugin's concrete download is located.
type SourceType string

const (
	// SourceDirect means the descriptor URL is the download itself.
	SourceDirect SourceType = "direct"
	// SourceGitHubRelease means the latest-release API of a GitHub repo is
	// queried and an asset is selected by name pattern.
	SourceGitHubRelease SourceType = "github_release"
	// SourceMaven means a maven-metadata.xml index is queried and a version
	// is selected by the release > latest > last-listed precedence rule.
	SourceMaven SourceType = "maven"
)

// GitHubMeta carries the coordinates for a SourceGitHubRelease descriptor.
type GitHubMeta struct {
	Owner        string
	Repo         string
	AssetPattern string // regular expression matched against asset names
}

// MavenMeta carries the coordinates for a SourceMaven descriptor.
type MavenMeta struct {
	BaseURL  string // repository root, no trailing slash
	Group    string // dotted group id
	Artifact string
}

// Descriptor describes one installable plugin. Descriptors are immutable;
// the catalog is built once at startup and never mutated.
type Descriptor struct {
	Name        string
	Description string
	// URL is the canonical reference. For SourceDirect it is the download
	// URL; for other sources it is the manual-fallback location shown to
	// the user when resolution is impossible.
	URL     string
	Default bool
	Source  SourceType
	// Archive marks descriptors whose download is a zip that must be
	// extracted into the plugins directory rather than kept as a jar.
	Archive bool
	GitHub  *GitHubMeta
	Maven   *MavenMeta
}

// Validate checks that source-specific metadata is present and complete.
func (d Descriptor) Validate() error {
	switch d.Source {
	case SourceDirect:
		if d.URL == "" {
			return fmt.Errorf("plugin %s: direct source requires a URL", d.Name)
		}
	case SourceGitHubRelease:
		if d.GitHub == nil || d.GitHub.Owner == "" || d.GitHub.Repo == "" || d.GitHub.AssetPattern == "" {
			return fmt.Errorf("plugin %s: github_release source requires owner, repo and asset pattern", d.Name)
		}
	case SourceMaven:
		if d.Maven == nil || d.Maven.BaseURL == "" || d.Maven.Group == "" || d.Maven.Artifact == "" {
			return fmt.Errorf("plugin %s: maven source requires base URL, group and artifact", d.Name)
		}
	default:
		return fmt.Errorf("plugin %s: unknown source type %q", d.Name, d.Source)
	}
	return nil
}

// Catalog is a read-only, ordered set of descriptors.
type Catalog struct {
	entries []Descriptor
	byName  map[string]Descriptor
}

// New builds a catalog from descriptors, preserving order.
func New(entries []Descriptor) Catalog {
	byName := make(map[string]Descriptor, len(entries))
	for _, d := range entries {
		byName[d.Name] = d
	}
	return Catalog{entries: entries, byName: byName}
}

// Lookup returns the descriptor for name, if known.
func (c Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// All returns the descriptors in declaration order.
func (c Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Defaults returns the names of descriptors selected by default.
func (c Catalog) Defaults() []string {
	var names []string
	for _, d := range c.entries {
		if d.Default {
			names = append(names, d.Name)
		}
	}
	return names
}

// Len reports the number of descriptors.
func (c Catalog) Len() int { return len(c.entries) }

// Validate checks every descriptor's metadata invariant.
func (c Catalog) Validate() error {
	for _, d := range c.entries {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}
