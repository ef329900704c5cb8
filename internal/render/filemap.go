// Package render turns a deployment configuration into the complete set of
// text artifacts for a bundle. Rendering is pure: no I/O, and identical
// input always produces byte-identical output.
package render

import (
	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// FileMap is an ordered mapping of relative posix-style paths to rendered
// content. Paths are unique; order only drives progress reporting.
type FileMap struct {
	paths    []string
	contents map[string]string
}

// NewFileMap returns an empty file map.
func NewFileMap() *FileMap {
	return &FileMap{contents: make(map[string]string)}
}

// Add inserts or replaces an entry. First insertion fixes the position.
func (m *FileMap) Add(path, content string) {
	if _, exists := m.contents[path]; !exists {
		m.paths = append(m.paths, path)
	}
	m.contents[path] = content
}

// Paths returns the relative paths in insertion order.
func (m *FileMap) Paths() []string {
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// Get returns the content for path.
func (m *FileMap) Get(path string) (string, bool) {
	c, ok := m.contents[path]
	return c, ok
}

// Len reports the number of entries.
func (m *FileMap) Len() int { return len(m.paths) }

// Input bundles everything the renderer needs. Resolved carries the
// pre-resolved downloads for non-direct plugins; it may be nil or partial,
// in which case the download scripts fall back to manual-download notes for
// the missing entries.
type Input struct {
	Config   deploy.Config
	Catalog  catalog.Catalog
	Resolved map[string]artifact.Resolution
}

// Render produces the full bundle file map for the input.
func Render(in Input) (*FileMap, error) {
	plan, err := NewLaunchPlan(in.Config)
	if err != nil {
		return nil, err
	}

	m := NewFileMap()
	m.Add("start.sh", RenderStartSh(plan))
	m.Add("start.ps1", RenderStartPs1(plan))
	m.Add("start.bat", RenderStartBat(plan))
	m.Add("server.properties", RenderServerProperties(in.Config))
	m.Add("purpur.yml", RenderPurpurConfig())
	m.Add("paper.yml", RenderPaperConfig(in.Config))
	m.Add("backup.sh", RenderBackupSh())
	m.Add("backup.ps1", RenderBackupPs1())
	m.Add("README.md", RenderGuide(in.Config, plan.JarName))
	m.Add("REQUIRED DOWNLOAD!!!.txt", RenderJavaNotice())
	m.Add("setup.sh", RenderSetupScript())
	m.Add("plugins/download_plugins.sh", RenderDownloadScriptSh(in))
	m.Add("plugins/download_plugins.ps1", RenderDownloadScriptPs1(in))
	m.Add("plugins/README.md", "Generated plugin configs + download script. Run download script before starting server.\n")
	for _, tier := range PermissionTiers() {
		m.Add("plugins/LuckPerms/yaml-storage/groups/"+tier.Name+".yml", RenderPermissionTier(tier))
	}
	m.Add("plugins/Essentials/config.yml", RenderEssentialsConfig())
	m.Add("plugins/GriefDefender/global.conf", RenderGriefDefenderConfig())
	m.Add("plugins/Dynmap/configuration.txt", RenderDynmapConfig())
	m.Add("plugins/mcMMO/config.yml", RenderMcMMOConfig())
	return m, nil
}
